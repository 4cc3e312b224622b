package game

import (
	"fmt"
	"log"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/config"
	"github.com/decker502/spriteanim/pkg/ecs"
)

// LoadAnimationSet 加载动画集中的所有精灵表并向注册表注册动画定义
//
// 普通动画进入动画池，fx_animations 进入 FX 动画池。
// 任一精灵表或动画构造失败都会立即返回错误（配置错误应在启动时暴露）。
//
// 返回：
//   - int: 注册的定义数量（普通 + FX）
//   - error: 加载或构造错误
func LoadAnimationSet(rm *ResourceManager, cfg *config.AnimationSetConfig, registry *animation.Registry) (int, error) {
	registered := 0

	register := func(defs []config.AnimationDef, fx bool) error {
		for i := range defs {
			def := &defs[i]
			sheet, ok := cfg.Sheet(def.Sheet)
			if !ok {
				return fmt.Errorf("animation %s: unknown sprite sheet %s", def.Name, def.Sheet)
			}

			handles, err := rm.LoadSpriteSheet(sheet)
			if err != nil {
				return fmt.Errorf("animation %s: %w", def.Name, err)
			}

			template, err := def.Build(sheet.Grid())
			if err != nil {
				return fmt.Errorf("animation %s: %w", def.Name, err)
			}

			var inserted bool
			if fx {
				inserted = registry.RegisterFxDefinition(handles, template)
			} else {
				inserted = registry.RegisterDefinition(handles, template)
			}
			if !inserted {
				log.Printf("[AnimationLoader] Warning: animation %s already registered, keeping the first definition", def.Name)
				continue
			}
			registered++
		}
		return nil
	}

	if err := register(cfg.Animations, false); err != nil {
		return registered, err
	}
	if err := register(cfg.FxAnimations, true); err != nil {
		return registered, err
	}

	log.Printf("[AnimationLoader] Registered %d animation definitions from %d sprite sheets", registered, len(cfg.Sheets))
	return registered, nil
}

// AttachAnimations 把动画池中的多个动画挂载到实体上
// 第一个名称成为实体的当前动画
func AttachAnimations(registry *animation.Registry, entity ecs.EntityID, names ...animation.Name) error {
	for _, name := range names {
		if err := registry.Attach(name, entity); err != nil {
			return fmt.Errorf("attach %s to entity %d: %w", name, entity, err)
		}
	}
	return nil
}

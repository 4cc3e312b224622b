// cmd/animation_showcase/config.go
// 动画演示程序的配置文件加载和解析模块

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GlobalConfig 全局配置
type GlobalConfig struct {
	Window WindowConfig `yaml:"window"`
	Scale  float64      `yaml:"scale"` // 精灵绘制缩放比例
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig 可操控角色配置
type PlayerConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"` // 移动速度（像素/秒）

	Idle   string `yaml:"idle"`   // 静止时播放的动画
	Walk   string `yaml:"walk"`   // 移动时播放的动画
	Attack string `yaml:"attack"` // 空格键触发的动画
	// Extra 额外挂载的动画，数字键 1-9 依次触发
	Extra []string `yaml:"extra,omitempty"`
}

// ShowcaseConfig 演示程序完整配置
type ShowcaseConfig struct {
	Global GlobalConfig `yaml:"global"`
	// Assets 资源根目录，精灵表图片路径相对于此目录
	Assets string `yaml:"assets"`
	// AnimationSet 动画集文件（.yaml 或 .res/.db 动画包），相对于工作目录
	AnimationSet string       `yaml:"animation_set"`
	Player       PlayerConfig `yaml:"player"`
	// Fx F 键生成的 FX 动画
	Fx string `yaml:"fx"`
}

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config ShowcaseConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 设置默认值
	if config.Global.Window.Width == 0 {
		config.Global.Window.Width = 640
	}
	if config.Global.Window.Height == 0 {
		config.Global.Window.Height = 480
	}
	if config.Global.Window.Title == "" {
		config.Global.Window.Title = "Sprite Animation Showcase"
	}
	if config.Global.Scale == 0 {
		config.Global.Scale = 1.0
	}
	if config.Assets == "" {
		config.Assets = "."
	}
	if config.Player.Speed == 0 {
		config.Player.Speed = 120
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &config, nil
}

func validateConfig(config *ShowcaseConfig) error {
	if config.AnimationSet == "" {
		return fmt.Errorf("缺少 'animation_set' 字段")
	}
	if config.Player.Idle == "" {
		return fmt.Errorf("缺少 'player.idle' 字段")
	}
	if config.Player.Speed < 0 {
		return fmt.Errorf("'player.speed' 不能为负数")
	}
	if len(config.Player.Extra) > 9 {
		return fmt.Errorf("'player.extra' 最多 9 个动画")
	}
	return nil
}

// PlayerAnimations 返回角色需要挂载的全部动画（去重，Idle 在最前）
func (c *ShowcaseConfig) PlayerAnimations() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, 3+len(c.Player.Extra))
	for _, name := range append([]string{c.Player.Idle, c.Player.Walk, c.Player.Attack}, c.Player.Extra...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

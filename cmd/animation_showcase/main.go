// cmd/animation_showcase/main.go
// 精灵表动画演示程序
//
// 用法：
//   go run ./cmd/animation_showcase --config=cmd/animation_showcase/config.yaml
//
// 方向键移动角色，空格攻击，F 生成特效，R 重置当前动画

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/components"
	"github.com/decker502/spriteanim/pkg/config"
	"github.com/decker502/spriteanim/pkg/ecs"
	"github.com/decker502/spriteanim/pkg/events"
	"github.com/decker502/spriteanim/pkg/game"
	"github.com/decker502/spriteanim/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	configPath = flag.String("config", "cmd/animation_showcase/config.yaml", "配置文件路径")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// Game 主游戏结构
type Game struct {
	config   *ShowcaseConfig
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	registry      *animation.Registry
	queues        *events.AnimationQueues
	animSystem    *systems.SpriteAnimationSystem
	renderSystem  *systems.SpriteRenderSystem

	player      ecs.EntityID
	showHelp    bool
	lastRequest animation.Name
}

// NewGame 创建游戏实例
func NewGame(configPath string) (*Game, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	animSet, err := config.LoadAnimationSource(cfg.AnimationSet)
	if err != nil {
		return nil, fmt.Errorf("加载动画集失败: %w", err)
	}

	settings := game.OpenSettingsManager("spriteanim_showcase")

	em := ecs.NewEntityManager()
	registry := animation.NewRegistry()
	rm := game.NewResourceManager(os.DirFS(cfg.Assets))

	count, err := game.LoadAnimationSet(rm, animSet, registry)
	if err != nil {
		return nil, fmt.Errorf("注册动画失败: %w", err)
	}
	log.Printf("✓ 加载动画集成功: %d 个动画定义", count)

	animCfg := animSet.AnimationsConfig()
	animCfg.PixelsPerMeter = settings.PixelsPerMeter(animCfg.PixelsPerMeter)

	queues := events.NewAnimationQueues()
	g := &Game{
		config:        cfg,
		settings:      settings,
		entityManager: em,
		registry:      registry,
		queues:        queues,
		animSystem:    systems.NewSpriteAnimationSystem(em, registry, queues, animCfg),
		renderSystem:  systems.NewSpriteRenderSystem(em),
		showHelp:      true,
	}

	if err := g.spawnPlayer(); err != nil {
		return nil, err
	}
	return g, nil
}

// spawnPlayer 创建可操控角色并挂载动画
func (g *Game) spawnPlayer() error {
	g.player = g.entityManager.CreateEntity()

	names := make([]animation.Name, 0)
	for _, name := range g.config.PlayerAnimations() {
		names = append(names, animation.Name(name))
	}
	if err := game.AttachAnimations(g.registry, g.player, names...); err != nil {
		return fmt.Errorf("挂载角色动画失败: %w", err)
	}

	idle := animation.Name(g.config.Player.Idle)
	handles, _ := g.registry.Handles(idle)
	tracked, _ := g.registry.Entity(g.player)
	frame := tracked.Current.CurrentRenderIndex(animation.Still)

	ecs.AddComponent(g.entityManager, g.player, &components.PositionComponent{
		X: g.config.Player.X,
		Y: g.config.Player.Y,
	})
	ecs.AddComponent(g.entityManager, g.player, &components.SpriteSheetComponent{
		Image:  handles.Image,
		Layout: handles.Layout,
		Index:  frame.Index,
		FlipX:  frame.FlipX,
	})
	ecs.AddComponent(g.entityManager, g.player, &components.AnimatorComponent{})
	ecs.AddComponent(g.entityManager, g.player, &components.ScaleComponent{
		ScaleX: g.config.Global.Scale,
		ScaleY: g.config.Global.Scale,
	})

	g.queues.PlayAnimation(idle, g.player)
	return nil
}

// Update 更新游戏状态
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.settings.Save(); err != nil {
			log.Printf("警告: 保存设置失败: %v", err)
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.settings.SetShowGrid(!g.settings.GetSettings().ShowGrid)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.settings.SetTimeScale(g.settings.GetSettings().TimeScale * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.settings.SetTimeScale(g.settings.GetSettings().TimeScale / 2)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.handlePlayerInput(dt)

	g.animSystem.Update(dt * g.settings.GetSettings().TimeScale)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// handlePlayerInput 读取键盘并发送动画请求
func (g *Game) handlePlayerInput(dt float64) {
	animator, ok := ecs.GetComponent[*components.AnimatorComponent](g.entityManager, g.player)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](g.entityManager, g.player)

	dir := animation.Still
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		dir = animation.Left
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		dir = animation.Right
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dir = animation.Up
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dir = animation.Down
	}
	animator.ChangeDirection(dir)

	// 阻塞动画期间角色不能移动
	blocked, _ := g.registry.InBlockingAnimation(g.player)
	if !dir.IsStill() && !blocked {
		v := dir.Vector()
		// 屏幕坐标 Y 轴向下
		pos.Translate(v.X*g.config.Player.Speed*dt, -v.Y*g.config.Player.Speed*dt)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.config.Player.Attack != "":
		g.play(animation.Name(g.config.Player.Attack))
	case !dir.IsStill() && g.config.Player.Walk != "":
		g.play(animation.Name(g.config.Player.Walk))
	default:
		g.play(animation.Name(g.config.Player.Idle))
	}

	for i, name := range g.config.Player.Extra {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.play(animation.Name(name))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) && g.config.Fx != "" {
		g.queues.SpawnFx(animation.Name(g.config.Fx), pos.Vec())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.queues.ResetAnimation(g.player)
	}
}

func (g *Game) play(name animation.Name) {
	if *verbose && name != g.lastRequest {
		log.Printf("→ 请求动画: %s", name)
	}
	g.lastRequest = name
	g.queues.PlayAnimation(name, g.player)
}

// Draw 绘制游戏画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	g.renderSystem.Draw(screen, 0, 0)

	if g.settings.GetSettings().ShowGrid {
		g.drawDebug(screen)
	}
	g.drawInfoBar(screen)
	if g.showHelp {
		g.drawHelp(screen)
	}
}

// drawDebug 在每个精灵旁标出当前单元格索引
func (g *Game) drawDebug(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteSheetComponent](g.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](g.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteSheetComponent](g.entityManager, id)
		label := fmt.Sprintf("#%d", sprite.Index)
		if sprite.FlipX {
			label += " flip"
		}
		ebitenutil.DebugPrintAt(screen, label, int(pos.X)+12, int(pos.Y)-24)
	}
}

// drawInfoBar 绘制顶部信息栏
func (g *Game) drawInfoBar(screen *ebiten.Image) {
	tracked, ok := g.registry.Entity(g.player)
	current := animation.Name("-")
	blocking := false
	facing := animation.Still
	if ok {
		if name, has := tracked.CurrentName(); has {
			current = name
		}
		blocking = tracked.InBlockingAnimation
		facing = tracked.LastValidDirection
	}

	info := fmt.Sprintf("TPS: %.1f | 动画: %s | 阻塞: %v | 朝向: %s | 实体: %d | 速度: x%.2f",
		ebiten.ActualTPS(), current, blocking, facing,
		g.registry.Len(), g.settings.GetSettings().TimeScale)
	ebitenutil.DebugPrintAt(screen, info, 10, 10)
}

// drawHelp 绘制帮助信息
func (g *Game) drawHelp(screen *ebiten.Image) {
	help := "操作说明:\n" +
		"  方向键  - 移动\n" +
		"  空格    - 攻击\n" +
		"  1-9     - 额外动画\n" +
		"  F       - 生成特效\n" +
		"  R       - 重置当前动画\n" +
		"  G       - 显示/隐藏索引\n" +
		"  +/-     - 调整播放速度\n" +
		"  H       - 显示/隐藏帮助\n" +
		"  ESC     - 保存设置并退出"
	ebitenutil.DebugPrintAt(screen, help, 10, 40)
}

// Layout 设置窗口布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Global.Window.Width, g.config.Global.Window.Height
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 精灵表动画演示启动 ===")

	g, err := NewGame(*configPath)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer g.registry.Clear()

	ebiten.SetWindowSize(g.config.Global.Window.Width, g.config.Global.Window.Height)
	ebiten.SetWindowTitle(g.config.Global.Window.Title)
	ebiten.SetFullscreen(g.settings.GetSettings().Fullscreen)
	ebiten.SetTPS(60)

	log.Println("=== 启动完成，开始运行 ===")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

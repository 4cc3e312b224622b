// cmd/anim_preview/main.go
// 终端动画预览：不加载图片，只在终端中驱动动画系统并显示精灵表网格上的当前单元格
//
// 用法：
//   go run ./cmd/anim_preview --animations=cmd/animation_showcase/animations.yaml

package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/spriteanim/pkg/config"
)

var animationsPath = flag.String("animations", "cmd/animation_showcase/animations.yaml", "动画集文件（.yaml 或 .res/.db）")

func main() {
	flag.Parse()

	cfg, err := config.LoadAnimationSource(*animationsPath)
	if err != nil {
		log.Fatalf("加载动画集失败: %v", err)
	}

	model, err := newPreviewModel(cfg)
	if err != nil {
		log.Fatalf("初始化预览失败: %v", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Preview error: %v", err)
		os.Exit(1)
	}
}

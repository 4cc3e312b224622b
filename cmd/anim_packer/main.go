// cmd/anim_packer/main.go
// 动画打包工具：把 YAML 动画集写入 bbolt 动画包
//
// 用法：
//   go run ./cmd/anim_packer --animations=animations.yaml --out=stage.res
//   go run ./cmd/anim_packer --out=stage.res --list

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/decker502/spriteanim/pkg/config"
)

var (
	animationsPath = flag.String("animations", "./animations.yaml", "动画集 YAML 文件路径")
	outPath        = flag.String("out", "./stage.res", "输出的动画包文件")
	list           = flag.Bool("list", false, "只列出动画包内容，不打包")
)

func main() {
	flag.Parse()

	if *list {
		if err := listPack(*outPath); err != nil {
			log.Fatalf("读取动画包失败: %v", err)
		}
		return
	}

	cfg, err := config.LoadAnimationSetConfig(*animationsPath)
	if err != nil {
		log.Fatalf("加载动画集失败: %v", err)
	}

	if err := config.SavePack(*outPath, cfg); err != nil {
		log.Fatalf("写入动画包失败: %v", err)
	}

	log.Printf("✓ 已写入 %s: %d 个精灵表, %d 个动画, %d 个 FX 动画",
		*outPath, len(cfg.Sheets), len(cfg.Animations), len(cfg.FxAnimations))
}

// listPack 打印动画包摘要
func listPack(path string) error {
	cfg, err := config.LoadPack(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "pixels_per_meter: %v\n", cfg.AnimationsConfig().PixelsPerMeter)

	fmt.Fprintln(os.Stdout, "sheets:")
	ids := make([]string, 0, len(cfg.Sheets))
	for _, sheet := range cfg.Sheets {
		ids = append(ids, fmt.Sprintf("  %-16s %s (%dx%d)", sheet.ID, sheet.Image, sheet.Columns, sheet.Rows))
	}
	sort.Strings(ids)
	for _, line := range ids {
		fmt.Fprintln(os.Stdout, line)
	}

	printDefs := func(title string, defs []config.AnimationDef) {
		fmt.Fprintf(os.Stdout, "%s:\n", title)
		for _, def := range defs {
			flags := ""
			if def.Repeating {
				flags += " repeating"
			}
			if def.Blocking {
				flags += fmt.Sprintf(" blocking(%d)", def.BlockingPriority)
			}
			fmt.Fprintf(os.Stdout, "  %-16s %-16s sheet=%s%s\n", def.Name, def.Kind, def.Sheet, flags)
		}
	}
	printDefs("animations", cfg.Animations)
	printDefs("fx_animations", cfg.FxAnimations)
	return nil
}

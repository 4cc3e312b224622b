package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/spriteanim/pkg/animation"
	"github.com/decker502/spriteanim/pkg/components"
	"github.com/decker502/spriteanim/pkg/ecs"
)

type previewStyles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	cell    lipgloss.Style
	active  lipgloss.Style
	blocked lipgloss.Style
	help    lipgloss.Style
}

var styles = previewStyles{
	title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF75B5")).Padding(0, 1),
	label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	value:   lipgloss.NewStyle().Bold(true),
	cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF88")),
	blocked: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
	help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1),
}

// View implements tea.Model
func (m *previewModel) View() string {
	if m.quitting {
		return ""
	}

	tracked, ok := m.registry.Entity(m.entity)
	if !ok {
		return styles.blocked.Render("角色已从注册表移除") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.title.Render("Sprite Animation Preview"))
	b.WriteString("\n\n")

	name, _ := tracked.CurrentName()
	sprite, _ := ecs.GetComponent[*components.SpriteSheetComponent](m.entityManager, m.entity)
	pos, _ := ecs.GetComponent[*components.PositionComponent](m.entityManager, m.entity)

	b.WriteString(m.field("选中", fmt.Sprintf("%s (%d/%d)", m.current(), m.selected+1, len(m.names))))
	b.WriteString(m.field("当前", fmt.Sprintf("%s [%s]", name, tracked.Current.Kind())))
	b.WriteString(m.field("朝向", fmt.Sprintf("%s (last valid: %s)", m.direction, tracked.LastValidDirection)))
	b.WriteString(m.field("位置", fmt.Sprintf("(%.1f, %.1f)", pos.X, pos.Y)))
	b.WriteString(m.field("帧", fmt.Sprintf("index=%d flip=%v", sprite.Index, sprite.FlipX)))

	state := "idle"
	switch {
	case tracked.InBlockingAnimation:
		state = styles.blocked.Render("blocking")
	case tracked.Triggered:
		state = styles.active.Render("playing")
	}
	if m.paused {
		state += " (paused)"
	}
	b.WriteString(m.field("状态", state))
	if single, ok := tracked.Current.AsSingleFrame(); ok && single.Blocking() {
		b.WriteString(m.field("冷却", fmt.Sprintf("%.2fs", single.BlockingRemaining())))
	}
	b.WriteString(m.field("FX", fmt.Sprintf("%d", m.registry.Len()-1)))
	b.WriteString("\n")

	if grid, ok := m.grids[name]; ok {
		b.WriteString(renderGrid(grid, sprite.Index, sprite.FlipX))
	}

	b.WriteString(styles.help.Render("tab/n 下一个  p 上一个  enter 重播  ←↑→↓ 朝向  s 停止  r 重置  f 特效  space 暂停  . 单步  q 退出"))
	b.WriteString("\n")
	return b.String()
}

func (m *previewModel) field(label, value string) string {
	return styles.label.Render(fmt.Sprintf("%-4s", label)) + " " + styles.value.Render(value) + "\n"
}

// renderGrid 以文本网格显示精灵表，高亮当前单元格
func renderGrid(grid animation.SheetGrid, index int, flipX bool) string {
	var b strings.Builder
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			if grid.Index(row, col) != index {
				b.WriteString(styles.cell.Render("[ ]"))
				continue
			}
			mark := "[■]"
			if flipX {
				mark = "[◄]"
			}
			b.WriteString(styles.active.Render(mark))
		}
		b.WriteString("\n")
	}
	return b.String()
}

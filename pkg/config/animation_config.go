package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/spriteanim/pkg/animation"
	"gopkg.in/yaml.v3"
)

// 动画类型名称（YAML 中的 kind 字段）
const (
	KindTimed           = "timed"
	KindTransform       = "transform"
	KindLinearTimed     = "linear_timed"
	KindLinearTransform = "linear_transform"
	KindSingleFrame     = "single_frame"
)

// 朝向解析策略名称（YAML 中的 direction.strategy 字段）
const (
	StrategyIndex = "index"
	StrategyFlip  = "flip"
	StrategyFixed = "fixed"
)

// DefaultPixelsPerMeter 未配置 pixels_per_meter 时的默认值
const DefaultPixelsPerMeter = 1.0

// AnimationSetConfig 动画集配置文件的顶层结构
type AnimationSetConfig struct {
	Global       GlobalConfig   `yaml:"global"`
	Sheets       []SheetConfig  `yaml:"sheets"`
	Animations   []AnimationDef `yaml:"animations"`
	FxAnimations []AnimationDef `yaml:"fx_animations,omitempty"`
}

// GlobalConfig 全局配置
type GlobalConfig struct {
	// PixelsPerMeter 每米对应的像素数，只被位移类动画使用
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
}

// SheetConfig 精灵表定义
type SheetConfig struct {
	ID          string `yaml:"id"`
	Image       string `yaml:"image"` // 图片路径（相对于资源根目录）
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
}

// Grid 返回精灵表帧网格
func (s *SheetConfig) Grid() animation.SheetGrid {
	return animation.SheetGrid{Columns: s.Columns, Rows: s.Rows}
}

// DirectionConfig 朝向解析策略配置（行号均为 0-based）
//
//	index: left/right/up/down 四个独立行号，缺省为 0
//	flip:  x 为水平朝向所在行，left_is_flipped 表示 Left 是否翻转绘制；
//	       up/down 可选，缺省时与 x 同行
//	fixed: row 固定行
type DirectionConfig struct {
	Strategy      string `yaml:"strategy"`
	Left          *int   `yaml:"left,omitempty"`
	Right         *int   `yaml:"right,omitempty"`
	Up            *int   `yaml:"up,omitempty"`
	Down          *int   `yaml:"down,omitempty"`
	X             int    `yaml:"x,omitempty"`
	LeftIsFlipped bool   `yaml:"left_is_flipped,omitempty"`
	Row           int    `yaml:"row,omitempty"`
}

// AnimationDef 单个动画定义
type AnimationDef struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Sheet string `yaml:"sheet"`

	// Frames 依次播放的列号（single_frame 以外的类型）
	Frames []int `yaml:"frames,omitempty"`
	// Frame 固定列号（single_frame）
	Frame int `yaml:"frame,omitempty"`

	// Timings 每帧时长（秒），timed/linear_timed 必填；只写一个值时所有帧共用
	Timings []float64 `yaml:"timings,omitempty"`
	// MetersPerFrame 每帧对应的移动距离（米），transform/linear_transform 必填
	MetersPerFrame float64 `yaml:"meters_per_frame,omitempty"`

	Repeating bool `yaml:"repeating,omitempty"`

	// 阻塞配置（timed/single_frame）
	Blocking         bool    `yaml:"blocking,omitempty"`
	BlockingPriority int     `yaml:"blocking_priority,omitempty"`
	BlockingTimer    float64 `yaml:"blocking_timer,omitempty"` // 仅 single_frame

	// Row 单行精灵表所在行（linear_timed/linear_transform）
	Row int `yaml:"row,omitempty"`

	// Direction 朝向解析策略（timed/transform/single_frame），缺省为全部第 0 行
	Direction *DirectionConfig `yaml:"direction,omitempty"`
}

// AnimationsConfig 动画系统运行时配置
type AnimationsConfig struct {
	PixelsPerMeter float64
}

// AnimationsConfig 提取运行时配置
func (c *AnimationSetConfig) AnimationsConfig() AnimationsConfig {
	ppm := c.Global.PixelsPerMeter
	if ppm <= 0 {
		ppm = DefaultPixelsPerMeter
	}
	return AnimationsConfig{PixelsPerMeter: ppm}
}

// Sheet 按 id 查找精灵表
func (c *AnimationSetConfig) Sheet(id string) (*SheetConfig, bool) {
	for i := range c.Sheets {
		if c.Sheets[i].ID == id {
			return &c.Sheets[i], true
		}
	}
	return nil, false
}

// LoadAnimationSetConfig 从 YAML 文件加载动画集配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *AnimationSetConfig: 解析并验证后的配置
//   - error: 读取、解析或验证错误
func LoadAnimationSetConfig(path string) (*AnimationSetConfig, error) {
	// 1. 读取文件
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	// 2. 解析并验证
	cfg, err := ParseAnimationSetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// LoadAnimationSetConfigFS 从 fs.FS 加载动画集配置
func LoadAnimationSetConfigFS(fsys fs.FS, path string) (*AnimationSetConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}
	cfg, err := ParseAnimationSetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// ParseAnimationSetConfig 解析并验证 YAML 内容
func ParseAnimationSetConfig(data []byte) (*AnimationSetConfig, error) {
	var cfg AnimationSetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("无法解析 YAML: %w", err)
	}
	if err := ValidateAnimationSet(&cfg); err != nil {
		return nil, fmt.Errorf("验证失败: %w", err)
	}
	return &cfg, nil
}

// LoadAnimationSource 按扩展名加载动画集
// .res/.db 视为 bbolt 动画包，其余按 YAML 处理
func LoadAnimationSource(path string) (*AnimationSetConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".res", ".db":
		return LoadPack(path)
	default:
		return LoadAnimationSetConfig(path)
	}
}

// ValidateAnimationSet 验证配置的完整性和正确性
func ValidateAnimationSet(cfg *AnimationSetConfig) error {
	if cfg.Global.PixelsPerMeter < 0 {
		return fmt.Errorf("pixels_per_meter 不能为负数: %v", cfg.Global.PixelsPerMeter)
	}

	// 1. 精灵表
	sheetIDs := make(map[string]bool)
	for i, sheet := range cfg.Sheets {
		if sheet.ID == "" {
			return fmt.Errorf("精灵表 #%d 缺少 'id' 字段", i)
		}
		if sheetIDs[sheet.ID] {
			return fmt.Errorf("精灵表 '%s' 重复定义", sheet.ID)
		}
		sheetIDs[sheet.ID] = true
		if sheet.Columns <= 0 || sheet.Rows <= 0 {
			return fmt.Errorf("精灵表 '%s' 的 columns/rows 必须为正数", sheet.ID)
		}
		if sheet.FrameWidth < 0 || sheet.FrameHeight < 0 {
			return fmt.Errorf("精灵表 '%s' 的帧尺寸不能为负数", sheet.ID)
		}
	}

	// 2. 动画与 FX 动画（各自命名空间）
	if err := validateDefs(cfg, cfg.Animations, "动画"); err != nil {
		return err
	}
	if err := validateDefs(cfg, cfg.FxAnimations, "FX 动画"); err != nil {
		return err
	}
	return nil
}

func validateDefs(cfg *AnimationSetConfig, defs []AnimationDef, label string) error {
	names := make(map[string]bool)
	for i := range defs {
		def := &defs[i]
		if def.Name == "" {
			return fmt.Errorf("%s #%d 缺少 'name' 字段", label, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%s '%s' 重复定义", label, def.Name)
		}
		names[def.Name] = true

		sheet, ok := cfg.Sheet(def.Sheet)
		if !ok {
			return fmt.Errorf("%s '%s' 引用了不存在的精灵表 '%s'", label, def.Name, def.Sheet)
		}
		if err := def.validate(sheet.Grid()); err != nil {
			return fmt.Errorf("%s '%s': %w", label, def.Name, err)
		}
	}
	return nil
}

func (d *AnimationDef) validate(grid animation.SheetGrid) error {
	switch d.Kind {
	case KindTimed, KindLinearTimed:
		if len(d.Frames) == 0 {
			return fmt.Errorf("'frames' 列表为空")
		}
		if len(d.Timings) == 0 {
			return fmt.Errorf("'timings' 列表为空")
		}
		if len(d.Timings) != 1 && len(d.Timings) != len(d.Frames) {
			return fmt.Errorf("'timings' 数量 %d 与 'frames' 数量 %d 不一致", len(d.Timings), len(d.Frames))
		}
		// 只有第一帧可以为 0（首次推进立即出帧）；单个时长会应用到所有帧
		broadcast := len(d.Timings) == 1 && len(d.Frames) > 1
		for i, timing := range d.Timings {
			if timing < 0 || (timing == 0 && (i > 0 || broadcast)) {
				return fmt.Errorf("'timings' 第 %d 项无效: %v", i, timing)
			}
		}
	case KindTransform, KindLinearTransform:
		if len(d.Frames) == 0 {
			return fmt.Errorf("'frames' 列表为空")
		}
		if d.MetersPerFrame <= 0 {
			return fmt.Errorf("'meters_per_frame' 必须为正数")
		}
	case KindSingleFrame:
		if d.Frame < 0 || d.Frame >= grid.Columns {
			return fmt.Errorf("'frame' %d 超出精灵表列数 %d", d.Frame, grid.Columns)
		}
		if d.BlockingTimer < 0 {
			return fmt.Errorf("'blocking_timer' 不能为负数")
		}
	default:
		return fmt.Errorf("未知动画类型 '%s'", d.Kind)
	}

	for _, column := range d.Frames {
		if column < 0 || column >= grid.Columns {
			return fmt.Errorf("帧列号 %d 超出精灵表列数 %d", column, grid.Columns)
		}
	}

	switch d.Kind {
	case KindLinearTimed, KindLinearTransform:
		if d.Row < 0 || d.Row >= grid.Rows {
			return fmt.Errorf("'row' %d 超出精灵表行数 %d", d.Row, grid.Rows)
		}
	default:
		indexes, err := d.Direction.Build()
		if err != nil {
			return err
		}
		if maxRow := indexes.MaxRow(); maxRow >= grid.Rows {
			return fmt.Errorf("朝向行号 %d 超出精灵表行数 %d", maxRow, grid.Rows)
		}
	}
	return nil
}

// Build 构造朝向解析策略
// 配置为 nil 时返回默认策略（全部第 0 行）
func (c *DirectionConfig) Build() (animation.DirectionIndexes, error) {
	if c == nil {
		return animation.DefaultDirectionIndexes(), nil
	}
	switch c.Strategy {
	case "", StrategyIndex:
		idx := animation.IndexBased{
			Left:  derefOr(c.Left, 0),
			Right: derefOr(c.Right, 0),
			Up:    derefOr(c.Up, 0),
			Down:  derefOr(c.Down, 0),
		}
		if min(idx.Left, idx.Right, idx.Up, idx.Down) < 0 {
			return nil, fmt.Errorf("朝向行号不能为负数")
		}
		return idx, nil
	case StrategyFlip:
		if c.X < 0 || derefOr(c.Up, 0) < 0 || derefOr(c.Down, 0) < 0 {
			return nil, fmt.Errorf("朝向行号不能为负数")
		}
		return animation.FlipBased{
			XRow:          c.X,
			LeftIsFlipped: c.LeftIsFlipped,
			UpRow:         c.Up,
			DownRow:       c.Down,
		}, nil
	case StrategyFixed:
		if c.Row < 0 {
			return nil, fmt.Errorf("朝向行号不能为负数")
		}
		return animation.FixedIndex{Row: c.Row}, nil
	default:
		return nil, fmt.Errorf("未知朝向策略 '%s'", c.Strategy)
	}
}

// Build 按精灵表网格构造动画模板
func (d *AnimationDef) Build(grid animation.SheetGrid) (animation.Animation, error) {
	name := animation.Name(d.Name)

	switch d.Kind {
	case KindTimed:
		directions, err := d.Direction.Build()
		if err != nil {
			return animation.Animation{}, fmt.Errorf("%s: %w", d.Name, err)
		}
		return animation.NewTimed(name, animation.TimedConfig{
			Frames:           d.Frames,
			Timings:          d.Timings,
			Grid:             grid,
			Directions:       directions,
			Repeating:        d.Repeating,
			Blocking:         d.Blocking,
			BlockingPriority: d.BlockingPriority,
		})
	case KindTransform:
		directions, err := d.Direction.Build()
		if err != nil {
			return animation.Animation{}, fmt.Errorf("%s: %w", d.Name, err)
		}
		return animation.NewTransform(name, animation.TransformConfig{
			Frames:         d.Frames,
			MetersPerFrame: d.MetersPerFrame,
			Grid:           grid,
			Directions:     directions,
			Repeating:      d.Repeating,
		})
	case KindLinearTimed:
		return animation.NewLinearTimed(name, animation.LinearTimedConfig{
			Frames:    d.Frames,
			Timings:   d.Timings,
			Grid:      grid,
			Row:       d.Row,
			Repeating: d.Repeating,
		})
	case KindLinearTransform:
		return animation.NewLinearTransform(name, animation.LinearTransformConfig{
			Frames:         d.Frames,
			MetersPerFrame: d.MetersPerFrame,
			Grid:           grid,
			Row:            d.Row,
			Repeating:      d.Repeating,
		})
	case KindSingleFrame:
		directions, err := d.Direction.Build()
		if err != nil {
			return animation.Animation{}, fmt.Errorf("%s: %w", d.Name, err)
		}
		return animation.NewSingleFrame(name, animation.SingleFrameConfig{
			Column:           d.Frame,
			Grid:             grid,
			Directions:       directions,
			Blocking:         d.Blocking,
			BlockingPriority: d.BlockingPriority,
			BlockingTimer:    d.BlockingTimer,
		})
	default:
		return animation.Animation{}, fmt.Errorf("%s: 未知动画类型 '%s'", d.Name, d.Kind)
	}
}

func derefOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

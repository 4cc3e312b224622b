package animation

// FallbackRow 无法识别的朝向/策略组合时使用的保守行号
const FallbackRow = 1

// DirectionIndexes 朝向到精灵表行号（y 索引）的解析策略
//
// 三种实现互斥：IndexBased、FlipBased、FixedIndex。
// 所有行号均为 0-based。
type DirectionIndexes interface {
	// Resolve 返回朝向对应的行号与水平翻转标记
	// previousRow 为上一次真实朝向解析出的行号，Still 时原样返回
	Resolve(dir Direction, previousRow int) (row int, flipX bool)
	// InitialRow 尚无任何朝向记忆时使用的行号
	InitialRow() int
	// MaxRow 策略可能引用的最大行号（用于配置校验）
	MaxRow() int

	directionIndexes()
}

// ResolveRow 使用给定策略解析朝向
// 策略为 nil 时退化为 FallbackRow
func ResolveRow(dir Direction, strategy DirectionIndexes, previousRow int) (int, bool) {
	if strategy == nil {
		return FallbackRow, false
	}
	return strategy.Resolve(dir, previousRow)
}

// IndexBased 每个朝向在精灵表中有独立的一行
//
// 例如精灵表从上到下依次为 下、左、右、上：
//
//	IndexBased{Left: 1, Right: 2, Up: 3, Down: 0}
type IndexBased struct {
	Left  int
	Right int
	Up    int
	Down  int
}

// OneDirectional 所有朝向都使用同一行
func OneDirectional(row int) IndexBased {
	return IndexBased{Left: row, Right: row, Up: row, Down: row}
}

// DefaultDirectionIndexes 默认策略：所有朝向使用第 0 行
func DefaultDirectionIndexes() DirectionIndexes {
	return OneDirectional(0)
}

func (IndexBased) directionIndexes() {}

func (d IndexBased) Resolve(dir Direction, previousRow int) (int, bool) {
	switch dir {
	case Left:
		return d.Left, false
	case Right:
		return d.Right, false
	case Up:
		return d.Up, false
	case Down:
		return d.Down, false
	case Still:
		return previousRow, false
	default:
		return FallbackRow, false
	}
}

func (d IndexBased) InitialRow() int {
	return d.Down
}

func (d IndexBased) MaxRow() int {
	return max(d.Left, d.Right, d.Up, d.Down)
}

// FlipBased 只有一行水平朝向的精灵，另一侧通过水平翻转得到
//
// LeftIsFlipped 表示 Left 朝向是否需要翻转绘制；Right 始终取其相反值。
// Up/Down 可以单独指定行号，未指定时退化为 (XRow, false)。
type FlipBased struct {
	XRow          int
	LeftIsFlipped bool
	UpRow         *int
	DownRow       *int
}

func (FlipBased) directionIndexes() {}

func (d FlipBased) Resolve(dir Direction, previousRow int) (int, bool) {
	switch dir {
	case Left:
		return d.XRow, d.LeftIsFlipped
	case Right:
		return d.XRow, !d.LeftIsFlipped
	case Up:
		if d.UpRow != nil {
			return *d.UpRow, false
		}
		return d.XRow, false
	case Down:
		if d.DownRow != nil {
			return *d.DownRow, false
		}
		return d.XRow, false
	case Still:
		return previousRow, false
	default:
		return FallbackRow, false
	}
}

func (d FlipBased) InitialRow() int {
	return d.XRow
}

func (d FlipBased) MaxRow() int {
	m := d.XRow
	if d.UpRow != nil {
		m = max(m, *d.UpRow)
	}
	if d.DownRow != nil {
		m = max(m, *d.DownRow)
	}
	return m
}

// FixedIndex 固定行，无朝向概念（FX 动画）
type FixedIndex struct {
	Row int
}

func (FixedIndex) directionIndexes() {}

func (d FixedIndex) Resolve(Direction, int) (int, bool) {
	return d.Row, false
}

func (d FixedIndex) InitialRow() int {
	return d.Row
}

func (d FixedIndex) MaxRow() int {
	return d.Row
}

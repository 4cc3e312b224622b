package animation

import "image"

// SheetGrid 精灵表的帧网格尺寸（列数 × 行数）
type SheetGrid struct {
	Columns int
	Rows    int
}

// Index 计算扁平索引：row × Columns + column
func (g SheetGrid) Index(row, column int) int {
	return row*g.Columns + column
}

// Cells 网格总格数
func (g SheetGrid) Cells() int {
	return g.Columns * g.Rows
}

// Contains 检查 (row, column) 是否落在网格内
func (g SheetGrid) Contains(row, column int) bool {
	return row >= 0 && column >= 0 && row < g.Rows && column < g.Columns
}

// Frame 一次渲染决策：精灵表单元格 + 水平翻转
type Frame struct {
	Column int
	Row    int
	FlipX  bool
	Index  int // Row × Columns + Column
}

func newFrame(grid SheetGrid, row, column int, flipX bool) Frame {
	return Frame{
		Column: column,
		Row:    row,
		FlipX:  flipX,
		Index:  grid.Index(row, column),
	}
}

// AtlasLayout 精灵表切片布局（均匀网格）
type AtlasLayout struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
}

// NewAtlasLayout 按单帧尺寸与网格尺寸创建布局
func NewAtlasLayout(frameWidth, frameHeight, columns, rows int) *AtlasLayout {
	return &AtlasLayout{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Columns:     columns,
		Rows:        rows,
	}
}

// Grid 返回布局对应的帧网格
func (l *AtlasLayout) Grid() SheetGrid {
	return SheetGrid{Columns: l.Columns, Rows: l.Rows}
}

// CellRect 返回扁平索引对应的像素矩形
// 帧从左到右、从上到下排列；索引超出网格时返回空矩形
func (l *AtlasLayout) CellRect(index int) image.Rectangle {
	if l.Columns <= 0 || index < 0 || index >= l.Grid().Cells() {
		return image.Rectangle{}
	}
	col := index % l.Columns
	row := index / l.Columns
	sx := col * l.FrameWidth
	sy := row * l.FrameHeight
	return image.Rect(sx, sy, sx+l.FrameWidth, sy+l.FrameHeight)
}

package components

// ScaleComponent 实体级别的缩放因子
// 渲染系统在绘制精灵表单元格时叠加此缩放；未挂载时按 1.0 绘制
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleY float64
}

package animation

import "errors"

var (
	// ErrEmptyFrames 帧列表为空
	ErrEmptyFrames = errors.New("animation: empty frame list")
	// ErrEmptyTimings 计时动画缺少帧时长
	ErrEmptyTimings = errors.New("animation: empty frame timings")
	// ErrTimingsMismatch 帧时长数量与帧数量不一致
	ErrTimingsMismatch = errors.New("animation: frame timings do not match frames")
	// ErrInvalidDistance 每帧距离必须为正数
	ErrInvalidDistance = errors.New("animation: meters per frame must be positive")
	// ErrFrameOutOfRange 帧列号超出精灵表列数
	ErrFrameOutOfRange = errors.New("animation: frame column outside sheet grid")
	// ErrInvalidGrid 精灵表网格尺寸无效
	ErrInvalidGrid = errors.New("animation: invalid sheet grid")

	// ErrUnknownAnimation 动画池中不存在该名称
	ErrUnknownAnimation = errors.New("animation: unknown animation")
	// ErrUnknownFxAnimation FX 动画池中不存在该名称
	ErrUnknownFxAnimation = errors.New("animation: unknown fx animation")
	// ErrEntityTracked 实体已被注册
	ErrEntityTracked = errors.New("animation: entity already tracked")
	// ErrAnimationAttached 实体上已存在同名动画
	ErrAnimationAttached = errors.New("animation: animation already attached to entity")
)

package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ShowcaseSettings 动画演示程序的本地设置
type ShowcaseSettings struct {
	// PixelsPerMeter 覆盖动画集配置中的 pixels_per_meter，0 表示不覆盖
	PixelsPerMeter float64 `yaml:"pixelsPerMeter"`
	// TimeScale 播放速度倍率 0.1 ~ 4.0
	TimeScale float64 `yaml:"timeScale"`
	// ShowGrid 是否在精灵上叠加网格/索引调试信息
	ShowGrid bool `yaml:"showGrid"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ShowcaseSettings {
	return &ShowcaseSettings{
		PixelsPerMeter: 0,
		TimeScale:      1.0,
		ShowGrid:       false,
		Fullscreen:     false,
	}
}

// 播放速度范围
const (
	minTimeScale = 0.1
	maxTimeScale = 4.0
)

// SettingsManager 设置管理器
// 负责演示程序设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager    // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ShowcaseSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "showcase"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查；加载失败不影响创建，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenSettingsManager 打开 gdata 存储并创建设置管理器
// gdata 无法初始化时退化为仅内存设置
func OpenSettingsManager(appName string) *SettingsManager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		sm, _ := NewSettingsManager(nil)
		return sm
	}
	sm, _ := NewSettingsManager(manager)
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.TimeScale = clampTimeScale(loaded.TimeScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 降级模式下返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ShowcaseSettings {
	return sm.settings
}

// SetTimeScale 设置播放速度倍率
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTimeScale(scale float64) {
	sm.settings.TimeScale = clampTimeScale(scale)
}

// SetPixelsPerMeter 设置 pixels_per_meter 覆盖值，非正数表示不覆盖
func (sm *SettingsManager) SetPixelsPerMeter(ppm float64) {
	sm.settings.PixelsPerMeter = max(ppm, 0)
}

// SetShowGrid 设置调试网格开关
func (sm *SettingsManager) SetShowGrid(enabled bool) {
	sm.settings.ShowGrid = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// PixelsPerMeter 返回生效的 pixels_per_meter
// 设置中没有覆盖值时返回 fallback
func (sm *SettingsManager) PixelsPerMeter(fallback float64) float64 {
	if sm.settings.PixelsPerMeter > 0 {
		return sm.settings.PixelsPerMeter
	}
	return fallback
}

func clampTimeScale(scale float64) float64 {
	if scale <= 0 {
		return 1.0
	}
	return min(max(scale, minTimeScale), maxTimeScale)
}

// Package config 提供行走模拟的配置加载
//
// 配置使用 YAML 格式，所有参数均有合理默认值；
// 响应曲线以控制点数据 + 插值规则名描述，而非硬编码公式。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/strider/pkg/locomotion"
	"github.com/gonewx/strider/pkg/utils"
)

// CurveConfig 响应曲线配置
//
// Points 为控制点表（按 t 升序，t/v 均在 0~1），Ease 为段内插值规则名：
// "linear" / "easeInOutCubic" / "easeInQuad" / "easeOutQuad"。
// Points 为空时曲线退化为 0→1 直连（仅由插值规则决定形状）。
type CurveConfig struct {
	Points []utils.CurvePoint `yaml:"points"`
	Ease   string             `yaml:"ease"`
}

// Build 根据配置构建曲线
// 未知的插值规则名回退为默认的缓入缓出
func (cc CurveConfig) Build() *utils.Curve {
	var ease func(float64) float64
	switch cc.Ease {
	case "linear":
		ease = utils.EaseLinear
	case "easeInQuad":
		ease = utils.EaseInQuad
	case "easeOutQuad":
		ease = utils.EaseOutQuad
	case "easeInOutCubic", "":
		ease = utils.EaseInOutCubic
	default:
		ease = utils.EaseInOutCubic
	}
	return utils.NewCurve(cc.Points, ease)
}

// WalkerConfig 行走者参数配置
//
// 配置文件位置: data/walker.yaml（可选，缺省使用 DefaultWalkerConfig）
type WalkerConfig struct {
	// 运动参数
	StepDistance float64 `yaml:"stepDistance"` // 单步前进距离
	StepSpeed    float64 `yaml:"stepSpeed"`    // 前进基础速度
	ReturnSpeed  float64 `yaml:"returnSpeed"`  // 返回基础速度
	MaxZPosition float64 `yaml:"maxZPosition"` // 最远前进距离
	DescentSpeed float64 `yaml:"descentSpeed"` // 下滑基础速度

	// 阻力参数
	ResistanceStrength   float64 `yaml:"resistanceStrength"`   // 单次点击横向位移量
	MaxSidewaysDeviation float64 `yaml:"maxSidewaysDeviation"` // 最大横向偏移
	ResistanceSlowdown   float64 `yaml:"resistanceSlowdown"`   // 单次点击阻力增量
	ResistanceDecay      float64 `yaml:"resistanceDecay"`      // 阻力每秒衰减量

	// 难度参数
	MinForwardSpeed          float64     `yaml:"minForwardSpeed"`          // 最远处前进速度下限
	MaxReturnSpeedMultiplier float64     `yaml:"maxReturnSpeedMultiplier"` // 最远处返回速度上限
	ForwardCurve             CurveConfig `yaml:"forwardCurve"`             // 前进响应曲线
	ReturnCurve              CurveConfig `yaml:"returnCurve"`              // 返回响应曲线

	// 节奏参数
	IdealBeatInterval float64 `yaml:"idealBeatInterval"` // 理想节拍间隔（秒）
	RhythmTolerance   float64 `yaml:"rhythmTolerance"`   // 节奏容差（秒）
	RhythmBufferTime  float64 `yaml:"rhythmBufferTime"`  // 预留参数，当前未使用
	MinBeatsForRhythm int     `yaml:"minBeatsForRhythm"` // 建立节奏的最少样本数

	// 音效参数
	MinPitch float64 `yaml:"minPitch"` // 脚步声最低音高倍率
	MaxPitch float64 `yaml:"maxPitch"` // 脚步声最高音高倍率
}

// DefaultWalkerConfig 返回默认配置
func DefaultWalkerConfig() *WalkerConfig {
	return &WalkerConfig{
		StepDistance: 0.5,
		StepSpeed:    2.0,
		ReturnSpeed:  1.0,
		MaxZPosition: 10.0,
		DescentSpeed: 2.0,

		ResistanceStrength:   0.05,
		MaxSidewaysDeviation: 0.5,
		ResistanceSlowdown:   0.15,
		ResistanceDecay:      0.4,

		MinForwardSpeed:          0.3,
		MaxReturnSpeedMultiplier: 2.5,

		IdealBeatInterval: 0.5,
		RhythmTolerance:   0.15,
		RhythmBufferTime:  0.1,
		MinBeatsForRhythm: 4,

		MinPitch: 0.9,
		MaxPitch: 1.1,
	}
}

// LoadWalkerConfig 从 YAML 文件加载配置
//
// 文件中缺省的字段保持默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/walker.yaml"）
//
// 返回:
//   - *WalkerConfig: 加载成功后的配置
//   - error: 读取或解析失败时返回错误
func LoadWalkerConfig(path string) (*WalkerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取行走配置失败: %w", err)
	}
	return ParseWalkerConfig(data)
}

// ParseWalkerConfig 从 YAML 字节解析配置，缺省字段保持默认值
func ParseWalkerConfig(data []byte) (*WalkerConfig, error) {
	cfg := DefaultWalkerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析行走配置失败: %w", err)
	}
	return cfg, nil
}

// ToLocomotion 转换为核心状态机所需的参数结构
func (c *WalkerConfig) ToLocomotion() locomotion.Config {
	return locomotion.Config{
		StepDistance:             c.StepDistance,
		StepSpeed:                c.StepSpeed,
		ReturnSpeed:              c.ReturnSpeed,
		MaxZPosition:             c.MaxZPosition,
		DescentSpeed:             c.DescentSpeed,
		ResistanceStrength:       c.ResistanceStrength,
		MaxSidewaysDeviation:     c.MaxSidewaysDeviation,
		ResistanceSlowdown:       c.ResistanceSlowdown,
		ResistanceDecay:          c.ResistanceDecay,
		MinForwardSpeed:          c.MinForwardSpeed,
		MaxReturnSpeedMultiplier: c.MaxReturnSpeedMultiplier,
		ForwardCurve:             c.ForwardCurve.Build(),
		ReturnCurve:              c.ReturnCurve.Build(),
		IdealBeatInterval:        c.IdealBeatInterval,
		RhythmTolerance:          c.RhythmTolerance,
		RhythmBufferTime:         c.RhythmBufferTime,
		MinBeatsForRhythm:        c.MinBeatsForRhythm,
		MinPitch:                 c.MinPitch,
		MaxPitch:                 c.MaxPitch,
	}
}

package config

import (
	"math"
	"testing"
)

// TestDefaultWalkerConfig 测试默认配置的关键值
func TestDefaultWalkerConfig(t *testing.T) {
	cfg := DefaultWalkerConfig()

	if cfg == nil {
		t.Fatal("DefaultWalkerConfig() returned nil")
	}
	if cfg.StepDistance <= 0 {
		t.Errorf("StepDistance = %v, 应为正值", cfg.StepDistance)
	}
	if cfg.MaxZPosition <= 0 {
		t.Errorf("MaxZPosition = %v, 应为正值", cfg.MaxZPosition)
	}
	if cfg.MinForwardSpeed <= 0 || cfg.MinForwardSpeed > 1 {
		t.Errorf("MinForwardSpeed = %v, 应在 (0, 1] 内", cfg.MinForwardSpeed)
	}
	if cfg.MaxReturnSpeedMultiplier < 1 {
		t.Errorf("MaxReturnSpeedMultiplier = %v, 应不小于 1", cfg.MaxReturnSpeedMultiplier)
	}
	if cfg.MinPitch > cfg.MaxPitch {
		t.Errorf("MinPitch %v > MaxPitch %v", cfg.MinPitch, cfg.MaxPitch)
	}
	if cfg.MinBeatsForRhythm < 2 {
		t.Errorf("MinBeatsForRhythm = %v, 样本太少无法估计节奏", cfg.MinBeatsForRhythm)
	}
}

// TestParseWalkerConfig 测试 YAML 解析：显式字段覆盖，缺省字段保持默认值
func TestParseWalkerConfig(t *testing.T) {
	yamlData := []byte(`
stepDistance: 2.0
maxZPosition: 20
idealBeatInterval: 0.4
forwardCurve:
  ease: linear
  points:
    - {t: 0, v: 0}
    - {t: 1, v: 1}
`)

	cfg, err := ParseWalkerConfig(yamlData)
	if err != nil {
		t.Fatalf("ParseWalkerConfig 失败: %v", err)
	}

	if cfg.StepDistance != 2.0 {
		t.Errorf("StepDistance = %v, 期望 2.0", cfg.StepDistance)
	}
	if cfg.MaxZPosition != 20.0 {
		t.Errorf("MaxZPosition = %v, 期望 20", cfg.MaxZPosition)
	}
	if cfg.IdealBeatInterval != 0.4 {
		t.Errorf("IdealBeatInterval = %v, 期望 0.4", cfg.IdealBeatInterval)
	}
	// 未出现在 YAML 中的字段保持默认值
	def := DefaultWalkerConfig()
	if cfg.StepSpeed != def.StepSpeed {
		t.Errorf("StepSpeed = %v, 期望保持默认值 %v", cfg.StepSpeed, def.StepSpeed)
	}
	if cfg.RhythmTolerance != def.RhythmTolerance {
		t.Errorf("RhythmTolerance = %v, 期望保持默认值 %v", cfg.RhythmTolerance, def.RhythmTolerance)
	}
}

// TestParseWalkerConfigInvalid 非法 YAML 返回错误
func TestParseWalkerConfigInvalid(t *testing.T) {
	if _, err := ParseWalkerConfig([]byte("stepDistance: [not a number")); err == nil {
		t.Error("非法 YAML 应返回错误")
	}
}

// TestCurveConfigBuild 测试曲线配置构建
func TestCurveConfigBuild(t *testing.T) {
	t.Run("线性规则", func(t *testing.T) {
		c := CurveConfig{Ease: "linear"}.Build()
		if got := c.Evaluate(0.25); math.Abs(got-0.25) > 0.001 {
			t.Errorf("Evaluate(0.25) = %v, 期望 0.25", got)
		}
	})

	t.Run("空规则回退缓入缓出", func(t *testing.T) {
		c := CurveConfig{}.Build()
		// 缓入缓出在 0.25 处为 4·0.25³ = 0.0625
		if got := c.Evaluate(0.25); math.Abs(got-0.0625) > 0.001 {
			t.Errorf("Evaluate(0.25) = %v, 期望 0.0625", got)
		}
	})

	t.Run("未知规则回退缓入缓出", func(t *testing.T) {
		c := CurveConfig{Ease: "bogus"}.Build()
		if got := c.Evaluate(0.5); math.Abs(got-0.5) > 0.001 {
			t.Errorf("Evaluate(0.5) = %v, 期望 0.5", got)
		}
	})
}

// TestToLocomotion 配置字段完整传递到核心参数
func TestToLocomotion(t *testing.T) {
	cfg := DefaultWalkerConfig()
	cfg.StepDistance = 1.5
	cfg.MaxZPosition = 7
	cfg.MinBeatsForRhythm = 6

	lc := cfg.ToLocomotion()
	if lc.StepDistance != 1.5 {
		t.Errorf("StepDistance = %v, 期望 1.5", lc.StepDistance)
	}
	if lc.MaxZPosition != 7 {
		t.Errorf("MaxZPosition = %v, 期望 7", lc.MaxZPosition)
	}
	if lc.MinBeatsForRhythm != 6 {
		t.Errorf("MinBeatsForRhythm = %v, 期望 6", lc.MinBeatsForRhythm)
	}
	if lc.ForwardCurve == nil || lc.ReturnCurve == nil {
		t.Error("转换后曲线不应为 nil")
	}
}

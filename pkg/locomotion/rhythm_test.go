package locomotion

import (
	"math"
	"testing"
)

// newTestTracker 理想间隔 0.5s、容差 0.15s、最少 4 个样本
func newTestTracker() *RhythmTracker {
	return NewRhythmTracker(0.5, 0.15, 4)
}

// TestRhythmFirstClickAlwaysValid 本周期第一次点击总是有效
func TestRhythmFirstClickAlwaysValid(t *testing.T) {
	rt := newTestTracker()
	if !rt.IsValidStep(123.456) {
		t.Error("第一次点击应始终有效")
	}
}

// TestRhythmAsymmetricWindow 未建立节奏时的非对称校验窗口
// 有效区间为 [ideal − tol, ideal + 2·tol]，偏晚比偏早更宽容
func TestRhythmAsymmetricWindow(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected bool
	}{
		{"过早", 0.34, false},
		{"早边界内", 0.36, true},
		{"理想间隔", 0.50, true},
		{"偏晚仍有效", 0.79, true},
		{"过晚", 0.81, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestTracker()
			rt.RecordClick(1.0)
			if got := rt.IsValidStep(1.0 + tt.dt); got != tt.expected {
				t.Errorf("dt=%v: IsValidStep = %v, 期望 %v", tt.dt, got, tt.expected)
			}
		})
	}
}

// TestRhythmEstablishment 以理想间隔精确点击足够次数后建立节奏
// 零标准差 → 置信度 1.0，超过 0.7 阈值
func TestRhythmEstablishment(t *testing.T) {
	rt := newTestTracker()
	now := 0.0
	// 1 次起始点击 + 4 次间隔点击 → 窗口中 4 个样本
	for i := 0; i < 5; i++ {
		rt.RecordClick(now)
		now += 0.5
	}

	if !rt.Established() {
		t.Fatal("精确等间隔点击后应已建立节奏")
	}
	if math.Abs(rt.Period()-0.5) > 0.001 {
		t.Errorf("Period = %v, 期望 0.5", rt.Period())
	}
	if math.Abs(rt.Confidence()-1.0) > 0.001 {
		t.Errorf("Confidence = %v, 期望 1.0", rt.Confidence())
	}
}

// TestRhythmEstablishedWindow 节奏建立后改用对称窗口 |dt − period| ≤ tol
func TestRhythmEstablishedWindow(t *testing.T) {
	rt := newTestTracker()
	now := 0.0
	for i := 0; i < 5; i++ {
		rt.RecordClick(now)
		now += 0.5
	}
	last := now - 0.5 // 最后一次点击时刻

	tests := []struct {
		name     string
		dt       float64
		expected bool
	}{
		{"恰在周期", 0.50, true},
		{"晚容差内", 0.64, true},
		{"晚越界", 0.66, false},
		{"早容差内", 0.36, true},
		{"早越界", 0.34, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rt.IsValidStep(last + tt.dt); got != tt.expected {
				t.Errorf("dt=%v: IsValidStep = %v, 期望 %v", tt.dt, got, tt.expected)
			}
		})
	}
}

// TestRhythmPeriodRefresh 节奏建立后继续点击会更新周期
func TestRhythmPeriodRefresh(t *testing.T) {
	rt := newTestTracker()
	now := 0.0
	for i := 0; i < 5; i++ {
		rt.RecordClick(now)
		now += 0.5
	}
	// 改以 0.55s 间隔继续点击，窗口逐渐被新样本替换
	for i := 0; i < 8; i++ {
		rt.RecordClick(now)
		now += 0.55
	}

	if !rt.Established() {
		t.Fatal("节奏应保持建立状态")
	}
	if math.Abs(rt.Period()-0.55) > 0.01 {
		t.Errorf("Period = %v, 期望约 0.55", rt.Period())
	}
}

// TestRhythmWindowEviction 间隔窗口容量为 minBeats+2，超出淘汰最旧
func TestRhythmWindowEviction(t *testing.T) {
	rt := newTestTracker()
	now := 0.0
	for i := 0; i < 10; i++ {
		rt.RecordClick(now)
		now += 0.5
	}
	if len(rt.intervals) > 6 {
		t.Errorf("窗口长度 = %d, 不应超过 6", len(rt.intervals))
	}
}

// TestRhythmScatteredClicksNoEstablish 间隔杂乱时置信度不足，不建立节奏
func TestRhythmScatteredClicksNoEstablish(t *testing.T) {
	rt := newTestTracker()
	times := []float64{0, 0.3, 1.2, 1.5, 2.8, 3.0}
	for _, ts := range times {
		rt.RecordClick(ts)
	}
	if rt.Established() {
		t.Errorf("杂乱间隔不应建立节奏 (confidence=%v)", rt.Confidence())
	}
}

// TestRhythmReset 重置后回到初始状态
func TestRhythmReset(t *testing.T) {
	rt := newTestTracker()
	now := 0.0
	for i := 0; i < 5; i++ {
		rt.RecordClick(now)
		now += 0.5
	}
	rt.Reset()

	if rt.Established() {
		t.Error("重置后不应保持已建立状态")
	}
	if rt.Period() != 0 || rt.Confidence() != 0 {
		t.Errorf("重置后 Period=%v Confidence=%v, 期望均为 0", rt.Period(), rt.Confidence())
	}
	if len(rt.intervals) != 0 {
		t.Errorf("重置后窗口长度 = %d, 期望 0", len(rt.intervals))
	}
	if !rt.IsValidStep(now + 100) {
		t.Error("重置后第一次点击应始终有效")
	}
}

// TestRhythmRecordsRejectedClicks 节奏无效的点击也会更新最近点击时刻
// （只要交替正确就会被记录）
func TestRhythmRecordsRejectedClicks(t *testing.T) {
	rt := newTestTracker()
	rt.RecordClick(0)
	// dt=0.2 在窗口外（无效），但仍被记录
	if rt.IsValidStep(0.2) {
		t.Fatal("dt=0.2 应判定为无效")
	}
	rt.RecordClick(0.2)
	// 此后的校验基准应是 0.2 时刻
	if !rt.IsValidStep(0.7) {
		t.Error("相对最近记录点击 dt=0.5 应有效")
	}
}

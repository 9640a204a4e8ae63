package locomotion

import (
	"math"

	"github.com/gonewx/strider/pkg/utils"
)

// confidenceThreshold 建立节奏所需的最低置信度
const confidenceThreshold = 0.7

// RhythmTracker 节奏追踪器
//
// 维护一个最近点击间隔的滑动窗口，从中估计稳定的节拍周期，
// 并据此判断新点击是否踩在节奏上。
//
// 生命周期：每个行走周期（回到初始位置）结束时整体重置。
type RhythmTracker struct {
	idealInterval float64 // 理想节拍间隔（秒）
	tolerance     float64 // 节奏容差（秒）
	minBeats      int     // 建立节奏所需的最少间隔样本数

	intervals []float64 // 间隔窗口，容量 minBeats+2，满则淘汰最旧
	lastClick float64   // 最近一次有效交替点击的时刻
	hasClick  bool      // 本周期内是否已有点击记录

	established bool    // 是否已建立节奏
	period      float64 // 已建立的节拍周期
	confidence  float64 // 置信度 0~1
}

// NewRhythmTracker 创建节奏追踪器
//
// 参数：
//   - idealInterval: 理想节拍间隔（秒），未建立节奏前的校验基准
//   - tolerance: 容差（秒）
//   - minBeats: 建立节奏所需的最少间隔样本数
func NewRhythmTracker(idealInterval, tolerance float64, minBeats int) *RhythmTracker {
	return &RhythmTracker{
		idealInterval: idealInterval,
		tolerance:     tolerance,
		minBeats:      minBeats,
		intervals:     make([]float64, 0, minBeats+2),
	}
}

// IsValidStep 判断时刻 now 的点击是否踩在节奏上
//
// 规则：
//   - 本周期第一次点击总是有效
//   - 未建立节奏：dt ∈ [ideal − tol, ideal + 2·tol]（非对称窗口，
//     偏晚的点击比偏早的更宽容）
//   - 已建立节奏：|dt − period| ≤ tol
func (rt *RhythmTracker) IsValidStep(now float64) bool {
	if !rt.hasClick {
		return true
	}
	dt := now - rt.lastClick
	if !rt.established {
		return dt >= rt.idealInterval-rt.tolerance &&
			dt <= rt.idealInterval+2*rt.tolerance
	}
	return math.Abs(dt-rt.period) <= rt.tolerance
}

// RecordClick 记录一次交替正确的点击并更新节奏估计
//
// 只要按键交替正确就会被调用，不论节奏校验是否通过。
// 将本次间隔推入窗口（超出容量淘汰最旧），窗口样本足够时重算节奏：
// 取窗口均值与总体标准差，confidence = clamp01(1 − σ/tol)；
// 置信度超过阈值则（重新）确立节拍周期为均值。
// 最后总是把 lastClick 更新为 now。
func (rt *RhythmTracker) RecordClick(now float64) {
	if rt.hasClick {
		dt := now - rt.lastClick
		rt.intervals = append(rt.intervals, dt)
		if len(rt.intervals) > rt.minBeats+2 {
			rt.intervals = rt.intervals[1:]
		}
		if len(rt.intervals) >= rt.minBeats {
			rt.recompute()
		}
	}
	rt.lastClick = now
	rt.hasClick = true
}

// recompute 根据当前窗口重算均值、标准差与置信度
func (rt *RhythmTracker) recompute() {
	mean := 0.0
	for _, v := range rt.intervals {
		mean += v
	}
	mean /= float64(len(rt.intervals))

	variance := 0.0
	for _, v := range rt.intervals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(rt.intervals))
	stddev := math.Sqrt(variance)

	rt.confidence = utils.Clamp01(1 - stddev/rt.tolerance)
	if rt.confidence > confidenceThreshold {
		rt.period = mean
		rt.established = true
	}
}

// Reset 清空窗口和已建立的节奏状态（周期边界调用）
func (rt *RhythmTracker) Reset() {
	rt.intervals = rt.intervals[:0]
	rt.lastClick = 0
	rt.hasClick = false
	rt.established = false
	rt.period = 0
	rt.confidence = 0
}

// Established 是否已建立节奏
func (rt *RhythmTracker) Established() bool { return rt.established }

// Period 已建立的节拍周期（秒）；未建立时为 0
func (rt *RhythmTracker) Period() float64 { return rt.period }

// Confidence 当前节奏置信度 0~1
func (rt *RhythmTracker) Confidence() float64 { return rt.confidence }

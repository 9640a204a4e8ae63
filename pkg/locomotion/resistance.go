package locomotion

import (
	"math"

	"github.com/gonewx/strider/pkg/utils"
)

// Resistance 下滑阻力模型
//
// 下滑/返回阶段中，持续点击被转化为两种效果：
//  1. 对自动后退运动的减速倍率 effect（0~1，离散递增、连续衰减）
//  2. 偏离理想回程直线的横向位移（受最大偏移量限制）
type Resistance struct {
	slowdown     float64 // 每次点击增加的阻力量
	decayRate    float64 // 阻力每秒衰减量
	strength     float64 // 单次点击的横向位移量
	maxDeviation float64 // 允许偏离理想直线的最大横向距离

	effect float64 // 当前阻力 0~1
}

// NewResistance 创建阻力模型
func NewResistance(slowdown, decayRate, strength, maxDeviation float64) *Resistance {
	return &Resistance{
		slowdown:     slowdown,
		decayRate:    decayRate,
		strength:     strength,
		maxDeviation: maxDeviation,
	}
}

// Push 一次有效的阻力点击：阻力增加 slowdown，夹取到 1
func (r *Resistance) Push() {
	r.effect = utils.Clamp01(r.effect + r.slowdown)
}

// Decay 每帧衰减：阻力减少 decayRate·dt，不低于 0
// 不论本帧是否有输入都会执行。
func (r *Resistance) Decay(dt float64) {
	r.effect = math.Max(0, r.effect-r.decayRate*dt)
}

// Effect 当前阻力值 0~1
func (r *Resistance) Effect() float64 { return r.effect }

// Reset 阻力清零（周期边界调用）
func (r *Resistance) Reset() { r.effect = 0 }

// LineProgress 沿理想直线（lineStart → lineEnd）的回程进度 0~1
//
// 取当前位置在直线上的投影比例。退化输入：起点与终点重合
// （直线长度为零）时定义进度为 1（视为已到达）。
func LineProgress(pos, lineStart, lineEnd utils.Vec3) float64 {
	line := lineEnd.Sub(lineStart)
	total := line.Dot(line)
	if total == 0 {
		return 1
	}
	return utils.Clamp01(pos.Sub(lineStart).Dot(line) / total)
}

// TryDeviate 尝试施加一次横向位移
//
// deviateLeft 为 true 时向 −right 方向位移，否则向 +right 方向。
// 仅当当前位置相对理想直线插值点的横向偏移仍在 maxDeviation 以内时
// 才施加位移；越界则拒绝（输入被浪费，位置不变）。
//
// 返回：
//   - utils.Vec3: 位移后的新位置（拒绝时为原位置）
//   - bool: 是否施加了位移
func (r *Resistance) TryDeviate(pos, lineStart, lineEnd utils.Vec3, right utils.Vec3, deviateLeft bool) (utils.Vec3, bool) {
	progress := LineProgress(pos, lineStart, lineEnd)
	ideal := utils.LerpVec3(lineStart, lineEnd, progress)
	offset := pos.Sub(ideal).Dot(right)
	if math.Abs(offset) >= r.maxDeviation {
		return pos, false
	}
	dir := 1.0
	if deviateLeft {
		dir = -1.0
	}
	return pos.Add(right.Scale(dir * r.strength)), true
}

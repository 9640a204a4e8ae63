package game

import "math"

// Animator 行走动画控制器
//
// 实现 locomotion.AnimationSink：接收状态机输出的标量速度信号
// （正=前进倍率，负=后退/下滑倍率，0=待机），将其积分为行走循环
// 相位，供渲染层绘制迈步摆动。
type Animator struct {
	speed float64 // 最近一次收到的速度信号
	phase float64 // 行走循环相位（弧度）
	rate  float64 // 速度 1.0 对应的相位推进速率（弧度/秒）
}

// NewAnimator 创建动画控制器
//
// 参数：
//   - rate: 速度信号为 1.0 时每秒推进的相位（弧度），
//     决定行走循环的基础节奏
func NewAnimator(rate float64) *Animator {
	return &Animator{rate: rate}
}

// SetSpeed 接收速度信号（locomotion.AnimationSink 接口）
func (a *Animator) SetSpeed(speed float64) {
	a.speed = speed
}

// Update 按当前速度推进行走循环相位
// 速度为负时相位倒走（后退动画）
func (a *Animator) Update(dt float64) {
	a.phase += a.speed * a.rate * dt
	// 相位保持在 [0, 2π) 内，避免长时间运行后精度下降
	a.phase = math.Mod(a.phase, 2*math.Pi)
	if a.phase < 0 {
		a.phase += 2 * math.Pi
	}
}

// Speed 最近一次收到的速度信号
func (a *Animator) Speed() float64 { return a.speed }

// Phase 当前行走循环相位（0 ~ 2π）
func (a *Animator) Phase() float64 { return a.phase }

// Swing 当前迈步摆动量（-1 ~ 1），待机时为 0
func (a *Animator) Swing() float64 {
	if a.speed == 0 {
		return 0
	}
	return math.Sin(a.phase)
}

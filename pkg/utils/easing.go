package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制响应曲线的形状，使速度变化看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速变化）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 区间内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CurvePoint 响应曲线的一个控制点
// T 为输入进度（0~1），V 为该进度处的输出值（0~1）
type CurvePoint struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

// Curve 响应曲线：控制点表 + 分段插值规则
//
// 曲线以数据形式描述（控制点列表），段内形状由可插拔的缓动函数决定，
// 默认使用 EaseInOutCubic。控制点按 T 升序排列，首尾覆盖 [0, 1]。
// 只要控制点的 V 值单调，整条曲线就单调。
type Curve struct {
	points []CurvePoint
	ease   func(t float64) float64
}

// NewCurve 创建响应曲线
//
// 参数：
//   - points: 控制点列表（按 T 升序）；少于 2 个点时回退为 0→1 直连
//   - ease: 段内插值规则，为 nil 时使用 EaseInOutCubic
func NewCurve(points []CurvePoint, ease func(float64) float64) *Curve {
	if ease == nil {
		ease = EaseInOutCubic
	}
	if len(points) < 2 {
		points = []CurvePoint{{T: 0, V: 0}, {T: 1, V: 1}}
	}
	return &Curve{points: points, ease: ease}
}

// LinearCurve 创建 0→1 的线性曲线
func LinearCurve() *Curve {
	return NewCurve(nil, EaseLinear)
}

// EaseInOutCurve 创建 0→1 的缓入缓出曲线（默认难度曲线形状）
func EaseInOutCurve() *Curve {
	return NewCurve(nil, EaseInOutCubic)
}

// Evaluate 求值：输入进度 t（自动夹取到 [0,1]），返回曲线输出
func (c *Curve) Evaluate(t float64) float64 {
	t = Clamp01(t)
	pts := c.points
	if t <= pts[0].T {
		return pts[0].V
	}
	last := pts[len(pts)-1]
	if t >= last.T {
		return last.V
	}
	// 定位所在分段，段内按缓动规则插值
	for i := 1; i < len(pts); i++ {
		if t <= pts[i].T {
			p0, p1 := pts[i-1], pts[i]
			span := p1.T - p0.T
			if span <= 0 {
				return p1.V
			}
			s := (t - p0.T) / span
			return Lerp(p0.V, p1.V, c.ease(s))
		}
	}
	return last.V
}

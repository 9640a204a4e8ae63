package utils

import "math"

// Vec3 三维向量
//
// 用于表示行走者的世界坐标位置和朝向基向量（前方/右方）。
// 所有方法均为值语义，不修改接收者。
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法（v - o）
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量乘法
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// DistanceTo 到另一点的直线距离
func (v Vec3) DistanceTo(o Vec3) float64 {
	return o.Sub(v).Length()
}

// Normalized 返回单位向量；零向量返回零值
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// LerpVec3 在 a 和 b 之间按 t 线性插值
// t=0 返回 a，t=1 返回 b
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// MoveTowards 从 current 向 target 移动最多 maxDelta 的距离
//
// 移动量受 maxDelta 限制，到达目标后不会越过（不会过冲）。
// 用于每帧的匀速趋近运动。
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	delta := target.Sub(current)
	dist := delta.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(delta.Scale(maxDelta / dist))
}

// Package locomotion 实现节奏驱动的行走状态机
//
// 核心规则：左右两路离散点击事件，经过交替校验（gate.go）与节奏校验
// （rhythm.go）后转化为沿前进轴的连续运动；到达最远距离后进入自动下滑，
// 玩家可通过持续点击施加阻力（resistance.go）。渐进难度由响应曲线
// （difficulty.go）根据进度比例调节前进/返回速度。
//
// 本包为纯逻辑层：位置读写通过 Transform 协作者完成，动画与音效通过
// 可选的 AnimationSink / AudioSink 输出，不依赖任何渲染或音频实现。
package locomotion

import "github.com/gonewx/strider/pkg/utils"

// Transform 位置与朝向协作者
//
// 行走者通过它读取当前位置和朝向基向量，并写回新位置。
// Forward/Right 必须返回单位向量。
type Transform interface {
	// Position 当前世界坐标
	Position() utils.Vec3
	// SetPosition 写回新的世界坐标
	SetPosition(p utils.Vec3)
	// Forward 前进方向单位向量
	Forward() utils.Vec3
	// Right 右方向单位向量
	Right() utils.Vec3
}

// AnimationSink 动画接收器
//
// 接收一个标量速度信号：正值为前进动画速度倍率，负值为后退/下滑倍率，
// 0 为待机。实现方自行决定如何映射到具体动画。
type AnimationSink interface {
	SetSpeed(speed float64)
}

// AudioSink 音效接收器
// PlayStep 以给定音高倍率播放一次脚步声（随机音高由调用方决定）
type AudioSink interface {
	PlayStep(pitch float64)
}

// SimpleTransform Transform 的基础实现
// 固定朝向基向量，直接持有位置。用于应用层和测试。
type SimpleTransform struct {
	Pos    utils.Vec3
	Fwd    utils.Vec3
	RightV utils.Vec3
}

// NewSimpleTransform 创建朝向 +Z、右方 +X 的变换
func NewSimpleTransform(pos utils.Vec3) *SimpleTransform {
	return &SimpleTransform{
		Pos:    pos,
		Fwd:    utils.Vec3{Z: 1},
		RightV: utils.Vec3{X: 1},
	}
}

// Position 当前位置
func (t *SimpleTransform) Position() utils.Vec3 { return t.Pos }

// SetPosition 写回位置
func (t *SimpleTransform) SetPosition(p utils.Vec3) { t.Pos = p }

// Forward 前进方向
func (t *SimpleTransform) Forward() utils.Vec3 { return t.Fwd }

// Right 右方向
func (t *SimpleTransform) Right() utils.Vec3 { return t.RightV }

package locomotion

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/strider/pkg/utils"
)

// State 行走状态机的状态
type State int

const (
	// StateIdle 待机（位于初始位置，或刚完成一步等待下一次输入）
	StateIdle State = iota
	// StateMovingForward 正在向目标点前进
	StateMovingForward
	// StateDescending 到达最远距离后的自动下滑
	StateDescending
	// StateReturning 中途停步后的自动返回
	StateReturning
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMovingForward:
		return "MovingForward"
	case StateDescending:
		return "Descending"
	case StateReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

// 到达判定阈值
const (
	arriveEpsilon = 0.01 // 前进/返回的到达判定距离
	driftEpsilon  = 0.1  // 下滑到达判定 & 待机漂移判定距离
)

// Config 行走者的全部可调参数
//
// 均为受信任的输入，核心逻辑不做校验（派生比例会夹取到 [0,1]）。
type Config struct {
	StepDistance             float64      // 单步前进距离
	StepSpeed                float64      // 前进基础速度
	ReturnSpeed              float64      // 返回基础速度
	MaxZPosition             float64      // 沿前进轴允许的最远距离
	DescentSpeed             float64      // 下滑基础速度
	ResistanceStrength       float64      // 单次阻力点击的横向位移量
	MaxSidewaysDeviation     float64      // 允许偏离理想回程直线的最大横向距离
	ResistanceSlowdown       float64      // 每次阻力点击增加的阻力量
	ResistanceDecay          float64      // 阻力每秒衰减量
	MinForwardSpeed          float64      // 最远处的前进速度倍率下限
	MaxReturnSpeedMultiplier float64      // 最远处的返回速度倍率上限
	ForwardCurve             *utils.Curve // 前进难度响应曲线（nil 为默认缓入缓出）
	ReturnCurve              *utils.Curve // 返回难度响应曲线（nil 为默认缓入缓出）
	IdealBeatInterval        float64      // 理想节拍间隔（秒）
	RhythmTolerance          float64      // 节奏容差（秒）
	RhythmBufferTime         float64      // 预留参数，当前逻辑未使用
	MinBeatsForRhythm        int          // 建立节奏所需的最少间隔样本数
	MinPitch                 float64      // 脚步声最低音高倍率
	MaxPitch                 float64      // 脚步声最高音高倍率
}

// InputFrame 单帧输入：两路边沿触发的按键信号
type InputFrame struct {
	LeftPressed  bool // 左键本帧刚按下
	RightPressed bool // 右键本帧刚按下
}

// Walker 节奏行走状态机
//
// 单一所有者模型：一个实例独占全部状态，逐帧推进，无并发访问。
// 每帧处理顺序：输入采样 → 交替/节奏校验 → 状态转移 → 运动积分 → 输出。
type Walker struct {
	cfg        Config
	transform  Transform
	anim       AnimationSink // 可为 nil（无动画输出）
	audio      AudioSink     // 可为 nil（无音效输出）
	rhythm     *RhythmTracker
	resistance *Resistance
	difficulty *Difficulty

	state      State
	clock      float64    // 内部单调时钟，由 dt 累积而来
	initialPos utils.Vec3 // 初始位置锚点
	targetPos  utils.Vec3 // 前进目标点，仅 MovingForward 状态有效
	lineStart  utils.Vec3 // 下滑/返回阶段的理想直线起点，进入阶段时捕获

	lastStepWasLeft bool // 交替标志，整个周期内持续，周期边界重置
}

// NewWalker 创建行走者
//
// 参数：
//   - cfg: 可调参数
//   - transform: 位置/朝向协作者，不可为 nil
//   - anim / audio: 可选输出接收器，为 nil 时对应输出为空操作
//
// 初始位置锚点取创建时 transform 的当前位置。
func NewWalker(cfg Config, transform Transform, anim AnimationSink, audio AudioSink) *Walker {
	w := &Walker{
		cfg:       cfg,
		transform: transform,
		anim:      anim,
		audio:     audio,
		rhythm: NewRhythmTracker(
			cfg.IdealBeatInterval, cfg.RhythmTolerance, cfg.MinBeatsForRhythm),
		resistance: NewResistance(
			cfg.ResistanceSlowdown, cfg.ResistanceDecay,
			cfg.ResistanceStrength, cfg.MaxSidewaysDeviation),
		difficulty: NewDifficulty(
			cfg.MinForwardSpeed, cfg.MaxReturnSpeedMultiplier,
			cfg.ForwardCurve, cfg.ReturnCurve),
		state:      StateIdle,
		initialPos: transform.Position(),
	}
	w.targetPos = w.initialPos
	return w
}

// Tick 推进一帧
//
// 参数：
//   - in: 本帧采样的输入
//   - dt: 距上一帧经过的时间（秒）
//
// 节奏时间戳与运动积分共用同一个由 dt 累积的内部时钟，
// 保证两种计时来源一致。
func (w *Walker) Tick(in InputFrame, dt float64) {
	w.clock += dt

	// 输入阶段：待机/前进时按键是迈步尝试，下滑/返回时按键是阻力输入
	switch w.state {
	case StateIdle, StateMovingForward:
		w.handleStepInput(in)
	case StateDescending, StateReturning:
		w.handleResistInput(in)
	}

	// 运动阶段
	switch w.state {
	case StateIdle:
		w.tickIdle()
	case StateMovingForward:
		w.tickMovingForward(dt)
	case StateDescending:
		w.tickDescending(dt)
	case StateReturning:
		w.tickReturning(dt)
	}
}

// handleStepInput 处理迈步尝试
//
// 任何按键都会触发一次脚步声（按错也响）；只有交替正确且节奏
// 有效的点击才真正迈步。交替正确但节奏无效的点击仍会被节奏
// 追踪器记录（更新最近点击时刻和间隔窗口）。
func (w *Walker) handleStepInput(in InputFrame) {
	if !in.LeftPressed && !in.RightPressed {
		return
	}
	w.playStepSound()

	if !CorrectButton(in.LeftPressed, in.RightPressed, w.lastStepWasLeft) {
		return
	}
	valid := w.rhythm.IsValidStep(w.clock)
	w.rhythm.RecordClick(w.clock)
	if !valid {
		return
	}

	// 有效迈步：计算目标点，超出最远距离则夹取到恰好最远处
	w.lastStepWasLeft = in.LeftPressed
	pos := w.transform.Position()
	fwd := w.transform.Forward()
	target := pos.Add(fwd.Scale(w.cfg.StepDistance))
	if w.forwardDistance(target) >= w.cfg.MaxZPosition {
		target = w.initialPos.Add(fwd.Scale(w.cfg.MaxZPosition))
	}
	w.targetPos = target
	w.state = StateMovingForward
	w.setAnimSpeed(w.difficulty.ForwardMultiplier(w.Progress()))
}

// handleResistInput 处理下滑/返回阶段的阻力输入
// 任一按键均有效，无需交替：增加阻力并尝试横向位移。
func (w *Walker) handleResistInput(in InputFrame) {
	if !in.LeftPressed && !in.RightPressed {
		return
	}
	w.resistance.Push()
	pos := w.transform.Position()
	if next, ok := w.resistance.TryDeviate(
		pos, w.lineStart, w.initialPos, w.transform.Right(), in.LeftPressed); ok {
		w.transform.SetPosition(next)
	}
}

// tickIdle 待机检查：离开初始位置且未到最远距离时开始自动返回
func (w *Walker) tickIdle() {
	pos := w.transform.Position()
	if pos.DistanceTo(w.initialPos) > driftEpsilon &&
		w.forwardDistance(pos) < w.cfg.MaxZPosition {
		w.state = StateReturning
		w.lineStart = pos
		w.setAnimSpeed(-w.difficulty.ReturnMultiplier(w.Progress()))
	}
}

// tickMovingForward 向目标点匀速趋近，不过冲
func (w *Walker) tickMovingForward(dt float64) {
	mult := w.difficulty.ForwardMultiplier(w.Progress())
	pos := utils.MoveTowards(
		w.transform.Position(), w.targetPos, w.cfg.StepSpeed*mult*dt)
	w.transform.SetPosition(pos)
	w.setAnimSpeed(mult)

	if pos.DistanceTo(w.targetPos) < arriveEpsilon {
		w.transform.SetPosition(w.targetPos)
		if w.forwardDistance(w.targetPos) >= w.cfg.MaxZPosition {
			// 到达最远距离：开始自动下滑
			w.state = StateDescending
			w.lineStart = w.targetPos
			w.setAnimSpeed(-1)
		} else {
			w.state = StateIdle
			w.setAnimSpeed(0)
		}
	}
}

// tickDescending 自动下滑：阻力衰减 → 后退运动 → 到达判定
func (w *Walker) tickDescending(dt float64) {
	w.resistance.Decay(dt)

	speed := w.cfg.DescentSpeed * (1 - w.resistance.Effect())
	pos := utils.MoveTowards(w.transform.Position(), w.initialPos, speed*dt)
	w.transform.SetPosition(pos)

	progress := LineProgress(pos, w.lineStart, w.initialPos)
	w.setAnimSpeed(utils.Lerp(-1, -w.cfg.MaxReturnSpeedMultiplier, progress) *
		(1 - w.resistance.Effect()*0.5))

	if pos.DistanceTo(w.initialPos) < driftEpsilon {
		w.completeCycle()
	}
}

// tickReturning 自动返回：与下滑同样的阻力处理，速度按进度曲线调节
func (w *Walker) tickReturning(dt float64) {
	w.resistance.Decay(dt)

	mult := w.difficulty.ReturnMultiplier(w.Progress())
	speed := w.cfg.ReturnSpeed * mult * (1 - w.resistance.Effect())
	pos := utils.MoveTowards(w.transform.Position(), w.initialPos, speed*dt)
	w.transform.SetPosition(pos)

	w.setAnimSpeed(-mult * (1 - w.resistance.Effect()*0.5))

	if pos.DistanceTo(w.initialPos) < arriveEpsilon {
		w.completeCycle()
	}
}

// completeCycle 周期边界：回到初始位置
// 清零阻力、重置节奏追踪器和交替标志，回到待机。
func (w *Walker) completeCycle() {
	w.transform.SetPosition(w.initialPos)
	w.state = StateIdle
	w.resistance.Reset()
	w.rhythm.Reset()
	w.lastStepWasLeft = false
	w.setAnimSpeed(0)
}

// SetNewInitialPosition 以当前位置为新的初始位置锚点
//
// 操作员显式调用：状态强制回到待机，交替标志清零，动画归零。
// 节奏追踪器保持不变（沿用既有行为，周期边界才会重置它）。
func (w *Walker) SetNewInitialPosition() {
	pos := w.transform.Position()
	w.initialPos = pos
	w.targetPos = pos
	w.state = StateIdle
	w.lastStepWasLeft = false
	w.setAnimSpeed(0)
}

// SetMaxZPosition 修改最远前进距离，下一次进度计算即生效
func (w *Walker) SetMaxZPosition(v float64) {
	w.cfg.MaxZPosition = v
}

// forwardDistance 点 p 相对初始位置沿前进轴的带符号投影距离
func (w *Walker) forwardDistance(p utils.Vec3) float64 {
	return p.Sub(w.initialPos).Dot(w.transform.Forward())
}

// Progress 进度比例：当前位置沿前进轴的归一化距离，夹取到 [0,1]
func (w *Walker) Progress() float64 {
	return utils.Clamp01(w.forwardDistance(w.transform.Position()) / w.cfg.MaxZPosition)
}

// State 当前状态
func (w *Walker) State() State { return w.state }

// ResistanceEffect 当前阻力值 0~1
func (w *Walker) ResistanceEffect() float64 { return w.resistance.Effect() }

// Rhythm 节奏追踪器（用于诊断显示）
func (w *Walker) Rhythm() *RhythmTracker { return w.rhythm }

// InitialPosition 当前初始位置锚点
func (w *Walker) InitialPosition() utils.Vec3 { return w.initialPos }

// setAnimSpeed 向动画接收器输出速度信号；接收器缺失时为空操作
func (w *Walker) setAnimSpeed(speed float64) {
	if w.anim != nil {
		w.anim.SetSpeed(speed)
	}
}

// playStepSound 以随机音高播放一次脚步声；接收器缺失时为空操作
func (w *Walker) playStepSound() {
	if w.audio == nil {
		return
	}
	pitch := w.cfg.MinPitch + rand.Float64()*(w.cfg.MaxPitch-w.cfg.MinPitch)
	w.audio.PlayStep(pitch)
}

// DebugStatus 诊断状态文本：状态、阻力百分比、节拍周期、下一个应按的键
func (w *Walker) DebugStatus() string {
	next := "L"
	if w.lastStepWasLeft {
		next = "R"
	}
	beat := "--"
	if w.rhythm.Established() {
		beat = fmt.Sprintf("%.2fs", w.rhythm.Period())
	}
	return fmt.Sprintf("state=%s resistance=%.0f%% beat=%s next=%s",
		w.state, w.resistance.Effect()*100, beat, next)
}

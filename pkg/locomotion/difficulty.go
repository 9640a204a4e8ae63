package locomotion

import "github.com/gonewx/strider/pkg/utils"

// Difficulty 渐进难度引擎
//
// 根据进度比例（0~1，行走者沿前进轴离初始位置的归一化距离）
// 通过两条独立的单调响应曲线计算速度倍率：
//   - 前进倍率随进度增大而减小（越靠近最远点迈步越慢）
//   - 返回/下滑倍率随进度增大而增大（离起点越远滑得越快）
type Difficulty struct {
	minForwardSpeed    float64      // 最远点处的前进速度下限
	maxReturnSpeedMult float64      // 最远点处的返回速度上限倍率
	forwardCurve       *utils.Curve // 前进响应曲线
	returnCurve        *utils.Curve // 返回响应曲线
}

// NewDifficulty 创建难度引擎
//
// 参数：
//   - minForwardSpeed: progress=1 时的前进速度倍率（0~1）
//   - maxReturnSpeedMult: progress=1 时的返回速度倍率（≥1）
//   - forwardCurve / returnCurve: 响应曲线，nil 时使用缓入缓出默认曲线
func NewDifficulty(minForwardSpeed, maxReturnSpeedMult float64, forwardCurve, returnCurve *utils.Curve) *Difficulty {
	if forwardCurve == nil {
		forwardCurve = utils.EaseInOutCurve()
	}
	if returnCurve == nil {
		returnCurve = utils.EaseInOutCurve()
	}
	return &Difficulty{
		minForwardSpeed:    minForwardSpeed,
		maxReturnSpeedMult: maxReturnSpeedMult,
		forwardCurve:       forwardCurve,
		returnCurve:        returnCurve,
	}
}

// ForwardMultiplier 前进速度倍率
//
// 公式：lerp(minForwardSpeed, 1, curve(1 − progress))
// 曲线作用在反转后的进度上：progress 接近 1 时结果接近 minForwardSpeed。
func (d *Difficulty) ForwardMultiplier(progress float64) float64 {
	return utils.Lerp(d.minForwardSpeed, 1, d.forwardCurve.Evaluate(1-utils.Clamp01(progress)))
}

// ReturnMultiplier 返回/下滑速度倍率
//
// 公式：lerp(1, maxReturnSpeedMult, curve(progress))
func (d *Difficulty) ReturnMultiplier(progress float64) float64 {
	return utils.Lerp(1, d.maxReturnSpeedMult, d.returnCurve.Evaluate(utils.Clamp01(progress)))
}

package locomotion

// CorrectButton 交替校验：判断本次按键是否符合左右交替规则
//
// 规则：上一步是右脚（lastStepWasLeft=false）时应按左键，
// 上一步是左脚时应按右键。纯函数，无副作用。
//
// 仅在向前迈步（Idle/MovingForward）时使用；下滑和返回阶段
// 任一按键都算有效的阻力输入，不经过本校验。
func CorrectButton(leftPressed, rightPressed, lastStepWasLeft bool) bool {
	return (leftPressed && !lastStepWasLeft) || (rightPressed && lastStepWasLeft)
}

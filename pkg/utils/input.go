// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SampleStepKeys 采样本帧左右脚按键的边沿触发状态
//
// 左脚：左方向键或 Z；右脚：右方向键或 X。
// 仅在按键刚按下的那一帧返回 true（边沿触发，不是持续按住）。
func SampleStepKeys() (leftPressed, rightPressed bool) {
	leftPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyZ)
	rightPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX)
	return leftPressed, rightPressed
}

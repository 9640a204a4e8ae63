package locomotion

import "testing"

// TestCorrectButton 测试左右交替校验
func TestCorrectButton(t *testing.T) {
	tests := []struct {
		name            string
		left, right     bool
		lastStepWasLeft bool
		expected        bool
	}{
		{"上步右脚_按左键", true, false, false, true},
		{"上步右脚_按右键", false, true, false, false},
		{"上步左脚_按右键", false, true, true, true},
		{"上步左脚_按左键", true, false, true, false},
		{"无按键", false, false, false, false},
		{"双键齐按_左有效", true, true, false, true},
		{"双键齐按_右有效", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectButton(tt.left, tt.right, tt.lastStepWasLeft)
			if got != tt.expected {
				t.Errorf("CorrectButton(%v, %v, %v) = %v, 期望 %v",
					tt.left, tt.right, tt.lastStepWasLeft, got, tt.expected)
			}
		})
	}
}

package game

import "testing"

// TestSynthesizeStep 合成的 PCM 长度与格式正确
func TestSynthesizeStep(t *testing.T) {
	sampleRate := 48000
	pcm := synthesizeStep(sampleRate, 1.0)

	expectedLen := int(float64(sampleRate)*stepDuration) * 4
	if len(pcm) != expectedLen {
		t.Errorf("PCM 长度 = %d, 期望 %d", len(pcm), expectedLen)
	}
	if len(pcm)%4 != 0 {
		t.Errorf("PCM 长度 %d 不是 4 的倍数（16 位双声道）", len(pcm))
	}

	// 不同音高产生不同波形
	pcm2 := synthesizeStep(sampleRate, 1.1)
	same := true
	for i := range pcm {
		if pcm[i] != pcm2[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("不同音高应产生不同波形")
	}
}

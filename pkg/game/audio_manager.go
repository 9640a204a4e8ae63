package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 脚步声合成参数
const (
	stepBaseFreq = 220.0 // 音高倍率 1.0 对应的基础频率（Hz）
	stepDuration = 0.06  // 单次脚步声长度（秒）
	pitchSteps   = 100   // 音高量化粒度（缓存键）
)

// AudioManager 音频管理器
// 职责：
//   - 合成并播放随机音高的脚步声（实现 locomotion.AudioSink）
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// 设计原则：
//   - 无资源文件：脚步声为程序合成的短促敲击音，按音高合成 PCM
//   - 与设置联动：自动应用 SettingsManager 中的音量/开关设置
//   - 播放器按量化音高缓存，避免每次点击都重新合成
type AudioManager struct {
	audioContext    *audio.Context   // ebiten 音频上下文
	settingsManager *SettingsManager // 设置管理器（可为 nil）
	stepPCM         map[int][]byte   // 量化音高 -> 合成好的 PCM 数据
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		stepPCM:         make(map[int][]byte),
	}
}

// PlayStep 以给定音高倍率播放一次脚步声
//
// pitch 为音高倍率（如 0.9 ~ 1.1），对合成波形的基础频率缩放。
// 实现 locomotion.AudioSink 接口；音效被禁用时不播放。
func (am *AudioManager) PlayStep(pitch float64) {
	if am.audioContext == nil {
		return
	}
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return
		}
	}

	pcm := am.getStepPCM(pitch)
	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
}

// getStepPCM 获取给定音高的脚步声 PCM，按量化音高缓存
func (am *AudioManager) getStepPCM(pitch float64) []byte {
	key := int(math.Round(pitch * pitchSteps))
	if pcm, ok := am.stepPCM[key]; ok {
		return pcm
	}
	pcm := synthesizeStep(am.audioContext.SampleRate(), float64(key)/pitchSteps)
	am.stepPCM[key] = pcm
	log.Printf("[AudioManager] Synthesized step sound (pitch: %.2f, %d bytes)",
		float64(key)/pitchSteps, len(pcm))
	return pcm
}

// getSoundVolume 获取音效音量；无设置管理器时返回默认值
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// synthesizeStep 合成一次脚步敲击音
//
// 正弦波乘以指数衰减包络，输出 16 位小端双声道 PCM
// （ebiten audio.Context 的原生格式）。
func synthesizeStep(sampleRate int, pitch float64) []byte {
	freq := stepBaseFreq * pitch
	n := int(float64(sampleRate) * stepDuration)
	pcm := make([]byte, n*4) // 每采样 2 声道 × 2 字节

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t / (stepDuration / 4))
		sample := math.Sin(2*math.Pi*freq*t) * envelope
		v := int16(sample * math.MaxInt16 * 0.6)

		pcm[i*4] = byte(v)
		pcm[i*4+1] = byte(v >> 8)
		pcm[i*4+2] = byte(v)
		pcm[i*4+3] = byte(v >> 8)
	}
	return pcm
}

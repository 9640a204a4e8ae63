// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建设置/音频管理器、
// 组装行走状态机，并实现 ebiten.Game 接口驱动逐帧模拟。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/strider/pkg/config"
	"github.com/gonewx/strider/pkg/game"
	"github.com/gonewx/strider/pkg/locomotion"
	"github.com/gonewx/strider/pkg/utils"
)

// 窗口逻辑尺寸
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// 渲染比例：世界坐标 1 单位对应的像素数
const pixelsPerUnit = 48.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 行走参数配置文件路径，为空则使用默认参数
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	walker    *locomotion.Walker
	transform *locomotion.SimpleTransform
	animator  *game.Animator
	settings  *game.SettingsManager
	walkerCfg *config.WalkerConfig
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载行走参数
	walkerCfg := config.DefaultWalkerConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadWalkerConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("行走配置加载失败: %w", err)
		}
		walkerCfg = loaded
		log.Printf("[App] Loaded walker config: %s", cfg.ConfigPath)
	}

	// 初始化跨平台存储（失败时降级为纯内存设置）
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 初始化音频
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 组装行走状态机
	animator := game.NewAnimator(2 * math.Pi)
	transform := locomotion.NewSimpleTransform(utils.Vec3{})
	walker := locomotion.NewWalker(walkerCfg.ToLocomotion(), transform, animator, audioManager)
	log.Printf("[App] Walker initialized (maxZ: %.1f, beat: %.2fs)",
		walkerCfg.MaxZPosition, walkerCfg.IdealBeatInterval)

	return &App{
		walker:    walker,
		transform: transform,
		animator:  animator,
		settings:  settingsManager,
		walkerCfg: walkerCfg,
	}, nil
}

// Update 每个逻辑帧更新一次模拟
//
// 按键映射：
//   - 左方向键 / Z：左脚
//   - 右方向键 / X：右脚
//   - R：以当前位置为新的初始位置
//   - F3：切换诊断文本
func (a *App) Update() error {
	leftPressed, rightPressed := utils.SampleStepKeys()
	in := locomotion.InputFrame{
		LeftPressed:  leftPressed,
		RightPressed: rightPressed,
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.walker.SetNewInitialPosition()
		log.Printf("[App] Initial position reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s := a.settings.GetSettings()
		a.settings.SetShowDebug(!s.ShowDebug)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	a.walker.Tick(in, dt)
	a.animator.Update(dt)
	return nil
}

// Draw 绘制轨道、行走者标记和诊断文本
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 28, B: 38, A: 255})

	// 轨道：初始位置在底部，前进方向朝上
	baseX := float32(WindowWidth / 2)
	baseY := float32(WindowHeight - 80)
	topY := baseY - float32(a.walkerCfg.MaxZPosition*pixelsPerUnit)
	vector.StrokeLine(screen, baseX, baseY, baseX, topY, 2,
		color.RGBA{R: 70, G: 80, B: 100, A: 255}, true)
	vector.StrokeLine(screen, baseX-12, topY, baseX+12, topY, 2,
		color.RGBA{R: 200, G: 80, B: 80, A: 255}, true)

	// 行走者标记：Z 轴映射到屏幕纵向，X 轴（横向偏移）映射到横向
	pos := a.transform.Position()
	initial := a.walker.InitialPosition()
	x := baseX + float32((pos.X-initial.X)*pixelsPerUnit)
	y := baseY - float32((pos.Z-initial.Z)*pixelsPerUnit)
	swing := float32(a.animator.Swing() * 4)
	vector.DrawFilledCircle(screen, x+swing, y, 8,
		color.RGBA{R: 120, G: 200, B: 120, A: 255}, true)

	if a.settings.GetSettings().ShowDebug {
		ebitenutil.DebugPrintAt(screen, a.walker.DebugStatus(), 10, 10)
		progress := fmt.Sprintf("progress=%.2f", a.walker.Progress())
		ebitenutil.DebugPrintAt(screen, progress, 10, 26)
	}
}

// Layout 返回逻辑屏幕尺寸，与实际窗口大小无关
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/strider/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "行走参数配置文件路径（YAML），为空使用内置默认值")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("节奏行者 - Rhythm Strider")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

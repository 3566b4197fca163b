package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/triangle/config"
	"github.com/oliverbestmann/triangle/orion"
	"github.com/oliverbestmann/triangle/pulse"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env", ".env", "env file to load if it exists")
	flag.Parse()

	if err := run(*configPath, *envFile); err != nil {
		slog.Error("Exiting", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(configPath, envFile string) error {
	conf, err := config.Load(configPath, envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, _ := conf.SlogLevel()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	pulse.SetLogLevel(conf.WGPULogLevel)

	if conf.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	clearColor := pulse.ColorLinearRGBA(
		conf.ClearColor[0],
		conf.ClearColor[1],
		conf.ClearColor[2],
		conf.ClearColor[3],
	)

	return orion.Run(orion.RunOptions{
		WindowWidth:          conf.Window.Width,
		WindowHeight:         conf.Window.Height,
		WindowTitle:          conf.Window.Title,
		ClearColor:           &clearColor,
		ForceFallbackAdapter: conf.ForceFallbackAdapter,
	})
}

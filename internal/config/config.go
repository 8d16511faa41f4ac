package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the app-level configuration. Everything has a sensible
// default; a missing file just means defaults.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Assets AssetsConfig `yaml:"assets"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type SceneConfig struct {
	LayoutPath string `yaml:"layout_path"`
}

type AssetsConfig struct {
	LoadTimeoutSeconds float64 `yaml:"load_timeout_seconds"`
}

// LoadTimeout returns the asset-loading deadline as a duration.
func (a AssetsConfig) LoadTimeout() time.Duration {
	return time.Duration(a.LoadTimeoutSeconds * float64(time.Second))
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "deskfolio",
			TargetFPS: 60,
		},
		Scene: SceneConfig{
			LayoutPath: "assets/desk.json",
		},
		Assets: AssetsConfig{
			LoadTimeoutSeconds: 10,
		},
	}
}

// Load reads a YAML config, filling unset fields from defaults.
// A missing file is not an error; malformed YAML is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = def.Window.TargetFPS
	}
	if c.Scene.LayoutPath == "" {
		c.Scene.LayoutPath = def.Scene.LayoutPath
	}
	if c.Assets.LoadTimeoutSeconds <= 0 {
		c.Assets.LoadTimeoutSeconds = def.Assets.LoadTimeoutSeconds
	}
}

// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/user/mandelfly/pkg/adapters/imagecodec"
	"github.com/user/mandelfly/pkg/camera"
	"github.com/user/mandelfly/pkg/orchestrator"
	"github.com/user/mandelfly/pkg/ports"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Render drivers selectable with the source key.
const (
	SourceBulb    = "bulb"
	SourcePattern = "pattern"
	SourceGL      = "gl"
)

// Sources lists the accepted source names.
var Sources = []string{SourceBulb, SourcePattern, SourceGL}

// Config represents the full configuration for mandelfly.
type Config struct {
	// Render
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MaxFrames int    `yaml:"max_frames"`
	Unbounded bool   `yaml:"unbounded"`
	Source    string `yaml:"source"`
	Shader    string `yaml:"shader"`
	Workers   int    `yaml:"workers"`

	Camera CameraConfig `yaml:"camera"`

	// Output
	OutputDir  string `yaml:"output_dir"`
	SaveFrames bool   `yaml:"save_frames"`
	Format     string `yaml:"format"`
	Summary    string `yaml:"summary"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// CameraConfig is the starting pose of the camera.
type CameraConfig struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`
	Pitch     float32    `yaml:"pitch"`
	FOV       float32    `yaml:"fov"`
	Speed     float32    `yaml:"speed"`
	Autopilot string     `yaml:"autopilot"` // keys held on every frame, e.g. "s" or "s+a"
}

// Defaults returns a Config with default values.
func Defaults() Config {
	cam := camera.New()
	orch := orchestrator.DefaultConfig()
	return Config{
		Width:     orch.Width,
		Height:    orch.Height,
		MaxFrames: orch.MaxFrames,
		Source:    SourceBulb,
		Shader:    "res/shaders/Basic.frag",

		Camera: CameraConfig{
			Position: [3]float32(cam.Position),
			Yaw:      cam.Yaw,
			Pitch:    cam.Pitch,
			FOV:      cam.FOV,
			Speed:    cam.Speed,
		},

		OutputDir:  orch.OutputDir,
		SaveFrames: orch.SaveFrames,
		Format:     "png",

		LogLevel: ports.LevelInfo.String(),
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		fail("frame size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxFrames <= 0 {
		fail("max_frames %d must be positive", c.MaxFrames)
	}
	if !contains(Sources, c.Source) {
		fail("source %q (expected %s)", c.Source, strings.Join(Sources, ", "))
	}
	if c.Source == SourceGL && c.Shader == "" {
		fail("source gl needs a shader")
	}
	if c.SaveFrames && c.OutputDir == "" {
		fail("output_dir is required when saving frames")
	}
	if c.Workers < 0 {
		fail("workers %d must not be negative", c.Workers)
	}
	if _, err := imagecodec.ForFormat(c.Format); err != nil {
		fail("format %q", c.Format)
	}
	if c.LogLevel != "" && ports.ParseLogLevel(c.LogLevel).String() != c.LogLevel {
		fail("log_level %q", c.LogLevel)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		fail("camera fov %.1f must be in (0, 180)", c.Camera.FOV)
	}
	if _, err := camera.ParseKeys(c.Camera.Autopilot); err != nil {
		fail("camera autopilot: %v", err)
	}

	return errors.Join(errs...)
}

// NewCamera builds the camera state described by the camera block.
func (c CameraConfig) NewCamera() *camera.State {
	cam := camera.New()
	cam.Position = mgl32.Vec3(c.Position)
	cam.Speed = c.Speed
	cam.FOV = c.FOV
	if c.Yaw != cam.Yaw || c.Pitch != cam.Pitch {
		cam.Yaw = c.Yaw
		cam.Pitch = mgl32.Clamp(c.Pitch, -camera.PitchLimit, camera.PitchLimit)
		cam.Forward = camera.Direction(cam.Yaw, cam.Pitch)
	}
	return cam
}

// AutopilotKeys parses the autopilot key list. Validate has already
// rejected unknown keys.
func (c CameraConfig) AutopilotKeys() camera.KeySet {
	keys, _ := camera.ParseKeys(c.Autopilot)
	return keys
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Width:      c.Width,
		Height:     c.Height,
		MaxFrames:  c.MaxFrames,
		Unbounded:  c.Unbounded,
		SaveFrames: c.SaveFrames,
		OutputDir:  c.OutputDir,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

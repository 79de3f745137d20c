// Package config loads stationdrive.cfg.json through viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stationdrive/internal/camera"
	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
	"stationdrive/internal/vehicle"
	"stationdrive/internal/world"
)

// FileName is looked up in the config directory.
const FileName = "stationdrive.cfg.json"

type WindowConfig struct {
	Width     int    `json:"width" mapstructure:"width"`
	Height    int    `json:"height" mapstructure:"height"`
	Title     string `json:"title" mapstructure:"title"`
	TargetFPS int    `json:"targetFps" mapstructure:"targetFps"`
}

type VehicleConfig struct {
	MaxSpeed          float32 `json:"maxSpeed" mapstructure:"maxSpeed"`
	ReverseFactor     float32 `json:"reverseFactor" mapstructure:"reverseFactor"`
	AccelerationRate  float32 `json:"accelerationRate" mapstructure:"accelerationRate"`
	DecelerationRate  float32 `json:"decelerationRate" mapstructure:"decelerationRate"`
	MinSteerSpeed     float32 `json:"minSteerSpeed" mapstructure:"minSteerSpeed"`
	BaseRotationSpeed float32 `json:"baseRotationSpeed" mapstructure:"baseRotationSpeed"`
	MaxTurnSpeed      float32 `json:"maxTurnSpeed" mapstructure:"maxTurnSpeed"`
	TurnSmoothing     float32 `json:"turnSmoothing" mapstructure:"turnSmoothing"`
	TurnDamping       float32 `json:"turnDamping" mapstructure:"turnDamping"`
	MoveEpsilon       float32 `json:"moveEpsilon" mapstructure:"moveEpsilon"`
}

type CameraConfig struct {
	BaseDistance      float32 `json:"baseDistance" mapstructure:"baseDistance"`
	DistanceGain      float32 `json:"distanceGain" mapstructure:"distanceGain"`
	BaseHeight        float32 `json:"baseHeight" mapstructure:"baseHeight"`
	HeightGain        float32 `json:"heightGain" mapstructure:"heightGain"`
	BaseSmoothing     float32 `json:"baseSmoothing" mapstructure:"baseSmoothing"`
	TurnLag           float32 `json:"turnLag" mapstructure:"turnLag"`
	LookAhead         float32 `json:"lookAhead" mapstructure:"lookAhead"`
	LookHeight        float32 `json:"lookHeight" mapstructure:"lookHeight"`
	PointerYawScale   float32 `json:"pointerYawScale" mapstructure:"pointerYawScale"`
	PointerPitchScale float32 `json:"pointerPitchScale" mapstructure:"pointerPitchScale"`
	PointerPitchMin   float32 `json:"pointerPitchMin" mapstructure:"pointerPitchMin"`
	PointerPitchMax   float32 `json:"pointerPitchMax" mapstructure:"pointerPitchMax"`
	Shake             bool    `json:"shake" mapstructure:"shake"`
	ShakeSpeed        float32 `json:"shakeSpeed" mapstructure:"shakeSpeed"`
	ShakeAmplitude    float32 `json:"shakeAmplitude" mapstructure:"shakeAmplitude"`
}

type CollisionConfig struct {
	Restitution        float32 `json:"restitution" mapstructure:"restitution"`
	TurnAttenuation    float32 `json:"turnAttenuation" mapstructure:"turnAttenuation"`
	StationRadius      float32 `json:"stationRadius" mapstructure:"stationRadius"`
	LargeStationRadius float32 `json:"largeStationRadius" mapstructure:"largeStationRadius"`
	MountainRadius     float32 `json:"mountainRadius" mapstructure:"mountainRadius"`
	TreeRadius         float32 `json:"treeRadius" mapstructure:"treeRadius"`
	RockRadius         float32 `json:"rockRadius" mapstructure:"rockRadius"`
	FallbackRadius     float32 `json:"fallbackRadius" mapstructure:"fallbackRadius"`
}

type ProximityConfig struct {
	DefaultRadius float32 `json:"defaultRadius" mapstructure:"defaultRadius"`
	IntensityStep float32 `json:"intensityStep" mapstructure:"intensityStep"`
	IntensityMax  float32 `json:"intensityMax" mapstructure:"intensityMax"`
	IntensityBase float32 `json:"intensityBase" mapstructure:"intensityBase"`
}

type WorldConfig struct {
	Seed       string `json:"seed" mapstructure:"seed"`
	LayoutFile string `json:"layoutFile" mapstructure:"layoutFile"`
	Trees      int    `json:"trees" mapstructure:"trees"`
	Rocks      int    `json:"rocks" mapstructure:"rocks"`
}

type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	Dir   string `json:"dir" mapstructure:"dir"`
}

type SentryConfig struct {
	DSN         string `json:"dsn" mapstructure:"dsn"`
	Environment string `json:"environment" mapstructure:"environment"`
}

type StatsviewConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Addr    string `json:"addr" mapstructure:"addr"`
}

type UIConfig struct {
	InstructionSeconds float32 `json:"instructionSeconds" mapstructure:"instructionSeconds"`
	ContentFile        string  `json:"contentFile" mapstructure:"contentFile"`
}

type Config struct {
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Vehicle   VehicleConfig   `json:"vehicle" mapstructure:"vehicle"`
	Camera    CameraConfig    `json:"camera" mapstructure:"camera"`
	Collision CollisionConfig `json:"collision" mapstructure:"collision"`
	Proximity ProximityConfig `json:"proximity" mapstructure:"proximity"`
	World     WorldConfig     `json:"world" mapstructure:"world"`
	UI        UIConfig        `json:"ui" mapstructure:"ui"`
	Log       LogConfig       `json:"log" mapstructure:"log"`
	Debug     bool            `json:"debug" mapstructure:"debug"`
	Sentry    SentryConfig    `json:"sentry" mapstructure:"sentry"`
	Statsview StatsviewConfig `json:"statsview" mapstructure:"statsview"`
}

func setDefaults() {
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "stationdrive")
	viper.SetDefault("window.targetFps", 60)

	vt := vehicle.DefaultTuning()
	viper.SetDefault("vehicle.maxSpeed", vt.MaxSpeed)
	viper.SetDefault("vehicle.reverseFactor", vt.ReverseFactor)
	viper.SetDefault("vehicle.accelerationRate", vt.AccelerationRate)
	viper.SetDefault("vehicle.decelerationRate", vt.DecelerationRate)
	viper.SetDefault("vehicle.minSteerSpeed", vt.MinSteerSpeed)
	viper.SetDefault("vehicle.baseRotationSpeed", vt.BaseRotationSpeed)
	viper.SetDefault("vehicle.maxTurnSpeed", vt.MaxTurnSpeed)
	viper.SetDefault("vehicle.turnSmoothing", vt.TurnSmoothing)
	viper.SetDefault("vehicle.turnDamping", vt.TurnDamping)
	viper.SetDefault("vehicle.moveEpsilon", vt.MoveEpsilon)

	ct := camera.DefaultTuning()
	viper.SetDefault("camera.baseDistance", ct.BaseDistance)
	viper.SetDefault("camera.distanceGain", ct.DistanceGain)
	viper.SetDefault("camera.baseHeight", ct.BaseHeight)
	viper.SetDefault("camera.heightGain", ct.HeightGain)
	viper.SetDefault("camera.baseSmoothing", ct.BaseSmoothing)
	viper.SetDefault("camera.turnLag", ct.TurnLag)
	viper.SetDefault("camera.lookAhead", ct.LookAhead)
	viper.SetDefault("camera.lookHeight", ct.LookHeight)
	viper.SetDefault("camera.pointerYawScale", ct.PointerYawScale)
	viper.SetDefault("camera.pointerPitchScale", ct.PointerPitchScale)
	viper.SetDefault("camera.pointerPitchMin", ct.PointerPitchMin)
	viper.SetDefault("camera.pointerPitchMax", ct.PointerPitchMax)
	viper.SetDefault("camera.shake", true)
	viper.SetDefault("camera.shakeSpeed", ct.ShakeSpeed)
	viper.SetDefault("camera.shakeAmplitude", ct.ShakeAmplitude)

	r := physics.DefaultResponse()
	radii := physics.DefaultRadii()
	viper.SetDefault("collision.restitution", r.Restitution)
	viper.SetDefault("collision.turnAttenuation", r.TurnAttenuation)
	viper.SetDefault("collision.stationRadius", radii.Station)
	viper.SetDefault("collision.largeStationRadius", radii.LargeStation)
	viper.SetDefault("collision.mountainRadius", radii.Mountain)
	viper.SetDefault("collision.treeRadius", radii.Tree)
	viper.SetDefault("collision.rockRadius", radii.Rock)
	viper.SetDefault("collision.fallbackRadius", radii.Fallback)

	pt := proximity.DefaultTuning()
	viper.SetDefault("proximity.defaultRadius", pt.DefaultRadius)
	viper.SetDefault("proximity.intensityStep", pt.IntensityStep)
	viper.SetDefault("proximity.intensityMax", pt.IntensityMax)
	viper.SetDefault("proximity.intensityBase", pt.IntensityBase)

	gen := world.DefaultGenOptions()
	viper.SetDefault("world.seed", "stationdrive")
	viper.SetDefault("world.layoutFile", "")
	viper.SetDefault("world.trees", gen.Trees)
	viper.SetDefault("world.rocks", gen.Rocks)

	viper.SetDefault("ui.instructionSeconds", 6)
	viper.SetDefault("ui.contentFile", "")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "./logs")
	viper.SetDefault("debug", false)

	viper.SetDefault("sentry.dsn", "")
	viper.SetDefault("sentry.environment", "development")

	viper.SetDefault("statsview.enabled", false)
	viper.SetDefault("statsview.addr", "localhost:18066")
}

// Load sets defaults, reads FileName from configDir if present and
// returns the merged configuration. A missing file is not an error.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// LogLevel is the configured level, forced to debug when Debug is set.
func (c Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}

func (v VehicleConfig) Tuning() vehicle.Tuning {
	return vehicle.Tuning{
		MaxSpeed:          v.MaxSpeed,
		ReverseFactor:     v.ReverseFactor,
		AccelerationRate:  v.AccelerationRate,
		DecelerationRate:  v.DecelerationRate,
		MinSteerSpeed:     v.MinSteerSpeed,
		BaseRotationSpeed: v.BaseRotationSpeed,
		MaxTurnSpeed:      v.MaxTurnSpeed,
		TurnSmoothing:     v.TurnSmoothing,
		TurnDamping:       v.TurnDamping,
		MoveEpsilon:       v.MoveEpsilon,
	}
}

func (c CameraConfig) Tuning() camera.Tuning {
	return camera.Tuning{
		BaseDistance:      c.BaseDistance,
		DistanceGain:      c.DistanceGain,
		BaseHeight:        c.BaseHeight,
		HeightGain:        c.HeightGain,
		BaseSmoothing:     c.BaseSmoothing,
		TurnLag:           c.TurnLag,
		LookAhead:         c.LookAhead,
		LookHeight:        c.LookHeight,
		PointerYawScale:   c.PointerYawScale,
		PointerPitchScale: c.PointerPitchScale,
		PointerPitchMin:   c.PointerPitchMin,
		PointerPitchMax:   c.PointerPitchMax,
		ShakeSpeed:        c.ShakeSpeed,
		ShakeAmplitude:    c.ShakeAmplitude,
	}
}

func (c CollisionConfig) Response() physics.Response {
	return physics.Response{Restitution: c.Restitution, TurnAttenuation: c.TurnAttenuation}
}

func (c CollisionConfig) Radii() physics.Radii {
	return physics.Radii{
		Station:      c.StationRadius,
		LargeStation: c.LargeStationRadius,
		Mountain:     c.MountainRadius,
		Tree:         c.TreeRadius,
		Rock:         c.RockRadius,
		Fallback:     c.FallbackRadius,
	}
}

func (p ProximityConfig) Tuning() proximity.Tuning {
	return proximity.Tuning{
		DefaultRadius: p.DefaultRadius,
		IntensityStep: p.IntensityStep,
		IntensityMax:  p.IntensityMax,
		IntensityBase: p.IntensityBase,
	}
}

// GenOptions applies the world section on top of the stock generator options.
func (c Config) GenOptions() world.GenOptions {
	opts := world.DefaultGenOptions()
	opts.Trees = c.World.Trees
	opts.Rocks = c.World.Rocks
	opts.Radii = c.Collision.Radii()
	return opts
}

// BindFlags lets command line flags override file and default values.
// Only flags that exist in fs are bound.
func BindFlags(fs *pflag.FlagSet) error {
	keys := map[string]string{
		"seed":   "world.seed",
		"layout": "world.layoutFile",
		"debug":  "debug",
		"log":    "log.level",
	}
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

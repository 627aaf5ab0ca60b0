package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roffe/speedgauge/pkg/colors"
	"github.com/roffe/speedgauge/pkg/gauge"
)

// Config is the attribute set of a gauge as read from a file or the
// environment (SPEEDGAUGE_*).
type Config struct {
	Progress    int
	MaxProgress int
	StartAngle  float64
	SweepAngle  float64

	// Palette picks low/mid/high from a named scheme. Explicit colors win.
	Palette    string
	FillColor  string
	LowColor   string
	MidColor   string
	HighColor  string
	TrackColor string
	Background string

	StrokeWidth float64
	TextSize    float64
	HideTrack   bool
	Padding     float64
	LabelOffset float64

	Width  int
	Height int
}

func defaults(v *viper.Viper) {
	v.SetDefault("progress", 0)
	v.SetDefault("maxprogress", gauge.DefaultMaxProgress)
	v.SetDefault("startangle", gauge.DefaultStartAngle)
	v.SetDefault("sweepangle", gauge.DefaultSweepAngle)
	v.SetDefault("palette", colors.Normal)
	v.SetDefault("fillcolor", "green")
	v.SetDefault("lowcolor", "")
	v.SetDefault("midcolor", "")
	v.SetDefault("highcolor", "")
	v.SetDefault("trackcolor", "gray")
	v.SetDefault("background", "#171718")
	v.SetDefault("strokewidth", gauge.DefaultStrokeWidth)
	v.SetDefault("textsize", gauge.DefaultTextSize)
	v.SetDefault("hidetrack", false)
	v.SetDefault("padding", 0)
	v.SetDefault("labeloffset", gauge.DefaultLabelOffset)
	v.SetDefault("width", 400)
	v.SetDefault("height", 400)
}

// Load reads path (any format viper understands) on top of the defaults.
// An empty path only uses defaults and the environment.
func Load(path string) (Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadWithFlags is Load with command line flags taking precedence over the
// file. Flag names must match the config keys.
func LoadWithFlags(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("speedgauge")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into renderer options.
func (c Config) Options() (gauge.Options, error) {
	stops := colors.Palette(colors.StringToColorBlindMode(c.Palette))
	o := gauge.Options{
		Progress:    c.Progress,
		MaxProgress: gauge.Int(c.MaxProgress),
		StartAngle:  gauge.Float(c.StartAngle),
		SweepAngle:  c.SweepAngle,
		LowColor:    stops.Low,
		MidColor:    stops.Mid,
		HighColor:   stops.High,
		StrokeWidth: c.StrokeWidth,
		TextSize:    c.TextSize,
		HideTrack:   c.HideTrack,
		Padding:     gauge.Padding{Left: c.Padding, Top: c.Padding, Right: c.Padding, Bottom: c.Padding},
		LabelOffset: gauge.Float(c.LabelOffset),
	}
	if c.MaxProgress <= 0 {
		return o, fmt.Errorf("maxprogress %d: %w", c.MaxProgress, gauge.ErrInvalidMaxProgress)
	}
	for _, f := range []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"fillcolor", c.FillColor, &o.FillColor},
		{"lowcolor", c.LowColor, &o.LowColor},
		{"midcolor", c.MidColor, &o.MidColor},
		{"highcolor", c.HighColor, &o.HighColor},
		{"trackcolor", c.TrackColor, &o.TrackColor},
	} {
		if f.in == "" {
			continue
		}
		col, err := colors.Parse(f.in)
		if err != nil {
			return o, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = col
	}
	return o, nil
}

// BackgroundColor parses the surface clear color.
func (c Config) BackgroundColor() (color.RGBA, error) {
	col, err := colors.Parse(c.Background)
	if err != nil {
		return col, fmt.Errorf("background: %w", err)
	}
	return col, nil
}

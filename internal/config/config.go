// Package config loads launchplot settings from .launchplot.yaml, LAUNCHPLOT_
// environment variables and command flags through viper.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/launchplot/internal/launch"
	"github.com/papapumpkin/launchplot/internal/orbit"
)

// Chart kinds.
const (
	KindCount          = "count"
	KindEnergy         = "energy"
	KindRelativeEnergy = "relative_energy"
	KindDeltaV         = "delta_v"
	KindMass           = "mass"
	KindStatus         = "status"
)

// Chart formats.
const (
	FormatPNG  = "png"
	FormatHTML = "html"
)

// ChartConfig describes one rendered chart. Output defaults to
// "<kind>.<format>" inside the output directory.
type ChartConfig struct {
	Kind   string `mapstructure:"kind"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	Title  string `mapstructure:"title"`
}

// TimeFilter bounds the launches kept while parsing. Empty bounds are open.
type TimeFilter struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// PhysicsConfig overrides the orbital constants.
type PhysicsConfig struct {
	GM               float64 `mapstructure:"gm"`
	EarthRadius      float64 `mapstructure:"earth_radius"`
	SurfacePotential float64 `mapstructure:"surface_potential"`
}

// Config holds all runtime configuration for a launchplot run.
// Values are populated from .launchplot.yaml, LAUNCHPLOT_* env vars, and CLI flags.
type Config struct {
	DataDir    string        `mapstructure:"data_dir"`
	FileFilter string        `mapstructure:"file_filter"`
	TimeFilter TimeFilter    `mapstructure:"time_filter"`
	GroupBy    string        `mapstructure:"group_by"`
	OutputDir  string        `mapstructure:"output_dir"`
	FontPath   string        `mapstructure:"font_path"`
	Workers    int           `mapstructure:"workers"`
	LogFile    string        `mapstructure:"log_file"`
	Verbose    bool          `mapstructure:"verbose"`
	Charts     []ChartConfig `mapstructure:"charts"`
	Physics    PhysicsConfig `mapstructure:"physics"`
}

// SetDefaults registers the built-in defaults on v. The year-dependent
// defaults use now.
func SetDefaults(v *viper.Viper, now time.Time) {
	year := now.UTC().Year()
	v.SetDefault("data_dir", "launchinfo")
	v.SetDefault("file_filter", strconv.Itoa(year))
	v.SetDefault("time_filter.start", fmt.Sprintf("%d-01-01", year))
	v.SetDefault("time_filter.end", "")
	v.SetDefault("group_by", "country")
	v.SetDefault("output_dir", ".")
	v.SetDefault("font_path", "")
	v.SetDefault("workers", launch.DefaultWorkers)
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)
	v.SetDefault("charts", []map[string]any{
		{"kind": KindCount, "format": FormatPNG},
		{"kind": KindEnergy, "format": FormatPNG},
	})
	v.SetDefault("physics.gm", orbit.GeocentricGM)
	v.SetDefault("physics.earth_radius", orbit.NominalEarthRadius)
	v.SetDefault("physics.surface_potential", orbit.SurfacePotentialEnergy)
}

// Load reads configuration from the global viper instance, applying built-in
// defaults for any values not set by config file, environment, or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper(), time.Now())
}

// LoadFrom is Load over an explicit viper instance and clock.
func LoadFrom(v *viper.Viper, now time.Time) (Config, error) {
	SetDefaults(v, now)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the chart list and the time filter.
func (c Config) Validate() error {
	for i, ch := range c.Charts {
		if !validKind(ch.Kind) {
			return fmt.Errorf("charts[%d]: unknown kind %q", i, ch.Kind)
		}
		switch strings.ToLower(ch.Format) {
		case "", FormatPNG, FormatHTML:
		default:
			return fmt.Errorf("charts[%d]: unknown format %q", i, ch.Format)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	_, err := c.Window()
	return err
}

// Window returns the parse-time filter window.
func (c Config) Window() (launch.Window, error) {
	start, err := parseBound(c.TimeFilter.Start)
	if err != nil {
		return launch.Window{}, fmt.Errorf("time_filter.start: %w", err)
	}
	end, err := parseBound(c.TimeFilter.End)
	if err != nil {
		return launch.Window{}, fmt.Errorf("time_filter.end: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return launch.Window{}, fmt.Errorf("time_filter.end %s is before start %s", c.TimeFilter.End, c.TimeFilter.Start)
	}
	return launch.Window{Start: start, End: end}, nil
}

// Constants returns the orbital constants, falling back to the defaults for
// unset values.
func (c Config) Constants() orbit.Constants {
	k := orbit.DefaultConstants()
	if c.Physics.GM != 0 {
		k.GM = c.Physics.GM
	}
	if c.Physics.EarthRadius != 0 {
		k.EarthRadius = c.Physics.EarthRadius
	}
	if c.Physics.SurfacePotential != 0 {
		k.SurfacePotential = c.Physics.SurfacePotential
	}
	return k
}

// ChartPath returns the file name a chart is written to.
func (ch ChartConfig) ChartPath() string {
	if ch.Output != "" {
		return ch.Output
	}
	return ch.Kind + "." + ch.FormatOrDefault()
}

// FormatOrDefault returns the lower-cased format, png when unset.
func (ch ChartConfig) FormatOrDefault() string {
	if f := strings.ToLower(ch.Format); f != "" {
		return f
	}
	return FormatPNG
}

// Kinds lists the chart kinds in display order.
func Kinds() []string {
	return []string{KindCount, KindEnergy, KindRelativeEnergy, KindDeltaV, KindMass, KindStatus}
}

func validKind(k string) bool {
	for _, v := range Kinds() {
		if k == v {
			return true
		}
	}
	return false
}

var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseBound(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

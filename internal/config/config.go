// Package config holds the settings of the pageviews command. Values are
// merged by viper from defaults, an optional TOML file, PAGEVIEWS_*
// environment variables and command line flags, later sources winning.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vdobler/pageviews"
	"github.com/vdobler/pageviews/stat"
)

// EnvPrefix prefixes all environment variables read by Load.
const EnvPrefix = "PAGEVIEWS"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Input     string `mapstructure:"input"`
	OutputDir string `mapstructure:"output-dir"`

	LineOutput string `mapstructure:"line-output"`
	BarOutput  string `mapstructure:"bar-output"`
	BoxOutput  string `mapstructure:"box-output"`

	LowerQuantile  float64 `mapstructure:"lower-quantile"`
	UpperQuantile  float64 `mapstructure:"upper-quantile"`
	QuantileMethod string  `mapstructure:"quantile-method"`

	DPI int `mapstructure:"dpi"`

	// Summary names the workbook receiving the chart aggregates.
	// Empty disables it.
	Summary string `mapstructure:"summary"`

	LogLevel string `mapstructure:"log-level"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Input:          pageviews.DefaultInput,
		OutputDir:      ".",
		LineOutput:     pageviews.DefaultLineOutput,
		BarOutput:      pageviews.DefaultBarOutput,
		BoxOutput:      pageviews.DefaultBoxOutput,
		LowerQuantile:  pageviews.DefaultLowerQuantile,
		UpperQuantile:  pageviews.DefaultUpperQuantile,
		QuantileMethod: stat.Linear.String(),
		DPI:            pageviews.DefaultTheme.DPI,
		LogLevel:       logrus.InfoLevel.String(),
	}
}

// SetDefaults registers the values of Default with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input", d.Input)
	v.SetDefault("output-dir", d.OutputDir)
	v.SetDefault("line-output", d.LineOutput)
	v.SetDefault("bar-output", d.BarOutput)
	v.SetDefault("box-output", d.BoxOutput)
	v.SetDefault("lower-quantile", d.LowerQuantile)
	v.SetDefault("upper-quantile", d.UpperQuantile)
	v.SetDefault("quantile-method", d.QuantileMethod)
	v.SetDefault("dpi", d.DPI)
	v.SetDefault("summary", d.Summary)
	v.SetDefault("log-level", d.LogLevel)
}

// Load reads the configuration from v. If file is not empty it is read as
// TOML first. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: no input file", ErrInvalid)
	case c.LowerQuantile < 0 || c.LowerQuantile > 1:
		return fmt.Errorf("%w: lower-quantile %g not in [0,1]", ErrInvalid, c.LowerQuantile)
	case c.UpperQuantile < 0 || c.UpperQuantile > 1:
		return fmt.Errorf("%w: upper-quantile %g not in [0,1]", ErrInvalid, c.UpperQuantile)
	case c.LowerQuantile > c.UpperQuantile:
		return fmt.Errorf("%w: lower-quantile %g above upper-quantile %g",
			ErrInvalid, c.LowerQuantile, c.UpperQuantile)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi %d", ErrInvalid, c.DPI)
	case c.LineOutput == "" || c.BarOutput == "" || c.BoxOutput == "":
		return fmt.Errorf("%w: empty output file name", ErrInvalid)
	}
	if _, err := c.Method(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Path places name in the output directory unless it is absolute.
func (c Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

func (c Config) Method() (stat.Method, error) {
	return stat.ParseMethod(c.QuantileMethod)
}

func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Pipeline sets up a pipeline according to c.
func (c Config) Pipeline(log logrus.FieldLogger) (*pageviews.Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	method, _ := c.Method()

	p := pageviews.New(log)
	p.Input = c.Input
	p.LowerQ, p.UpperQ = c.LowerQuantile, c.UpperQuantile
	p.Method = method
	p.LineOutput = c.Path(c.LineOutput)
	p.BarOutput = c.Path(c.BarOutput)
	p.BoxOutput = c.Path(c.BoxOutput)
	p.Theme.DPI = c.DPI
	return p, nil
}

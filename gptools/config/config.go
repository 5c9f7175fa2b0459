package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gpspoint-tools/gptools/convert"
	"gpspoint-tools/gptools/coord"
)

// DefaultFile is the configuration file name looked up in the home directory
const DefaultFile = ".gpspoint.yaml"

const envPrefix = "GPSPOINT_"

// Config holds application configuration
type Config struct {
	CoordMode    coord.Mode
	RelativeRefs bool
	Units        convert.Units
	LogLevel     slog.Level
}

// settings raw values, as found in the file, the environment or the flags
type settings struct {
	CoordMode     string `yaml:"coord_mode"`
	FileRefFormat string `yaml:"file_ref_format"`
	Units         string `yaml:"units"`
	LogLevel      string `yaml:"log_level"`
}

func (s *settings) fields() map[string]*string {
	return map[string]*string{
		"coord_mode":      &s.CoordMode,
		"file_ref_format": &s.FileRefFormat,
		"units":           &s.Units,
		"log_level":       &s.LogLevel,
	}
}

// merge overrides s with every non empty value of o
func (s *settings) merge(o settings) {
	dst := s.fields()
	for name, v := range o.fields() {
		if *v != "" {
			*dst[name] = *v
		}
	}
}

type options struct {
	file   string
	getenv func(string) string
}

// Option configures Load
type Option func(*options)

// WithFile looks the configuration file up at path instead of ~/.gpspoint.yaml.
// A missing file is not an error.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithEnv replaces os.Getenv
func WithEnv(getenv func(string) string) Option {
	return func(o *options) {
		o.getenv = getenv
	}
}

// Load parses configuration. Defaults are overridden by the configuration
// file, then by GPSPOINT_* environment variables, then by flags registered
// on fs and parsed from args.
func Load(fset *flag.FlagSet, args []string, opts ...Option) (*Config, error) {
	o := options{getenv: os.Getenv}
	for _, opt := range opts {
		opt(&o)
	}

	var flags settings
	configFile := fset.String("config", "", "configuration file (default ~/"+DefaultFile+")")
	fset.StringVar(&flags.CoordMode, "coord_mode", "", "coordinate mode of new layers: latlon or utm")
	fset.StringVar(&flags.FileRefFormat, "file_ref_format", "", "image paths written as: absolute or relative")
	fset.StringVar(&flags.Units, "units", "", "display units: metric or imperial")
	fset.StringVar(&flags.LogLevel, "log_level", "", "log level: debug, info, warn or error")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	s := settings{
		CoordMode:     "latlon",
		FileRefFormat: "absolute",
		Units:         "metric",
		LogLevel:      "warn",
	}

	path, explicit := o.file, false
	if *configFile != "" {
		path, explicit = *configFile, true
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFile)
		}
	}
	if path != "" {
		fromFile, err := readFile(path)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
		s.merge(fromFile)
	}

	var env settings
	for name, v := range env.fields() {
		*v = o.getenv(envPrefix + strings.ToUpper(name))
	}
	s.merge(env)
	s.merge(flags)

	return s.parse()
}

func readFile(path string) (settings, error) {
	var s settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func (s settings) parse() (*Config, error) {
	mode, err := coord.ParseMode(s.CoordMode)
	if err != nil {
		return nil, err
	}

	units, err := convert.ParseUnits(s.Units)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", s.LogLevel)
	}

	cfg := &Config{
		CoordMode: mode,
		Units:     units,
		LogLevel:  level,
	}

	switch strings.ToLower(s.FileRefFormat) {
	case "absolute":
	case "relative":
		cfg.RelativeRefs = true
	default:
		return nil, fmt.Errorf("invalid file reference format %q, want absolute or relative", s.FileRefFormat)
	}

	return cfg, nil
}

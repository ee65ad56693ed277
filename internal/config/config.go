// Package config reads the gaze-fov settings from the environment.
//
// Values come from GAZE_FOV_* environment variables, optionally seeded from
// .env files loaded with godotenv. Variables already present in the process
// environment win over the file. Every field has a default, so an empty
// environment yields a usable Settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/ironsheep/gaze-fov/internal/fov"
)

// Prefix is prepended to every variable name.
const Prefix = "GAZE_FOV_"

// Variable names, without Prefix.
const (
	EnvFOVDegree      = "FOV_DEGREE"
	EnvConfThreshold  = "CONF_THRESHOLD"
	EnvCountThreshold = "COUNT_THRESHOLD"
	EnvImageSize      = "IMAGE_SIZE"
	EnvNumObjects     = "NUM_OBJECTS"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFile        = "LOG_FILE"
	EnvGridSpacing    = "GRID_SPACING"
)

// Settings is the full runtime configuration of the binary.
type Settings struct {
	FOVDegree      float64 `validate:"gte=0,lt=90"`
	ConfThreshold  float64 `validate:"gt=0,lt=1"`
	CountThreshold int     `validate:"gte=1,lte=4"`

	// ImageSize is the side of the square demo canvas in pixels.
	ImageSize int `validate:"gte=16,lte=8192"`

	// NumObjects is how many random objects the demo scene holds.
	NumObjects int `validate:"gte=0,lte=1000"`

	LogLevel string `validate:"oneof=trace debug info warn warning error"`
	LogFile  string

	// GridSpacing is the grid overlay step in pixels; 0 disables the grid.
	GridSpacing int `validate:"gte=0"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		FOVDegree:      fov.DefaultFOVDegree,
		ConfThreshold:  fov.DefaultConfThreshold,
		CountThreshold: fov.DefaultCountThreshold,
		ImageSize:      500,
		NumObjects:     5,
		LogLevel:       "info",
	}
}

// Load reads .env files (missing files are ignored) and then the environment.
// With no files given, ".env" in the working directory is tried.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds Settings from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()
	r := reader{lookup: lookup}

	r.float(EnvFOVDegree, &s.FOVDegree)
	r.float(EnvConfThreshold, &s.ConfThreshold)
	r.int(EnvCountThreshold, &s.CountThreshold)
	r.int(EnvImageSize, &s.ImageSize)
	r.int(EnvNumObjects, &s.NumObjects)
	r.string(EnvLogLevel, &s.LogLevel)
	r.string(EnvLogFile, &s.LogFile)
	r.int(EnvGridSpacing, &s.GridSpacing)

	if len(r.errs) > 0 {
		return Settings{}, fmt.Errorf("%w: %s", fov.ErrInvalidInput, strings.Join(r.errs, "; "))
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

var validate = validator.New()

// Validate checks every field against its allowed range.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", fov.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s%s=%v violates %s", Prefix, envName(fe.Field()), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", fov.ErrInvalidInput, strings.Join(msgs, "; "))
}

// FOV returns the classification tunables.
func (s Settings) FOV() fov.Config {
	return fov.Config{
		FOVDegree:      s.FOVDegree,
		ConfThreshold:  s.ConfThreshold,
		CountThreshold: s.CountThreshold,
	}
}

func envName(field string) string {
	switch field {
	case "FOVDegree":
		return EnvFOVDegree
	case "ConfThreshold":
		return EnvConfThreshold
	case "CountThreshold":
		return EnvCountThreshold
	case "ImageSize":
		return EnvImageSize
	case "NumObjects":
		return EnvNumObjects
	case "LogLevel":
		return EnvLogLevel
	case "GridSpacing":
		return EnvGridSpacing
	}
	return field
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []string
}

func (r *reader) get(name string) (string, bool) {
	v, ok := r.lookup(Prefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *reader) float(name string, dst *float64) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s%s=%q is not a number", Prefix, name, v))
		return
	}
	*dst = f
}

func (r *reader) int(name string, dst *int) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s%s=%q is not an integer", Prefix, name, v))
		return
	}
	*dst = n
}

func (r *reader) string(name string, dst *string) {
	if v, ok := r.get(name); ok {
		*dst = v
	}
}

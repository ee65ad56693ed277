package fov

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput marks a configuration or input that violates a documented
// precondition. Such errors are permanent; retrying the same call fails again.
var ErrInvalidInput = errors.New("invalid input")

// Default tunables, matching the demo driver.
const (
	DefaultFOVDegree      = 60.0
	DefaultConfThreshold  = 0.5
	DefaultCountThreshold = 1
)

var validate = validator.New()

// Config holds the classification tunables.
type Config struct {
	// FOVDegree is the full opening angle of the wedge in degrees.
	FOVDegree float64 `json:"fov_degree" yaml:"fov_degree" validate:"gte=0,lt=90"`

	// ConfThreshold is the minimum confidence for an object to be tested.
	ConfThreshold float64 `json:"conf_threshold" yaml:"conf_threshold" validate:"gt=0,lt=1"`

	// CountThreshold is how many of the 4 box edges must reach the wedge.
	CountThreshold int `json:"count_threshold" yaml:"count_threshold" validate:"gte=1,lte=4"`
}

// DefaultConfig returns the default tunables.
func DefaultConfig() Config {
	return Config{
		FOVDegree:      DefaultFOVDegree,
		ConfThreshold:  DefaultConfThreshold,
		CountThreshold: DefaultCountThreshold,
	}
}

// HalfAngle returns half the FOV opening angle in radians.
func (c Config) HalfAngle() float64 {
	return math.Pi * c.FOVDegree / 360
}

// Validate checks every tunable against its documented range.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

package sketch

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is matched, via errors.Is, by every error returned from
// [Config.Validate].
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError describes a configuration field with an unusable value.
type ConfigError struct {
	Field string
	Value any
	cause error
}

func (e *ConfigError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid config: %s = %v: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid config: %s = %v", e.Field, e.Value)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *ConfigError) Unwrap() error { return e.cause }

var (
	errNotPositive = errors.New("must be positive")
	errNegative    = errors.New("must not be negative")
	errNotFinite   = errors.New("must be finite")
)

// Config holds the parameters of [Consensus].
//
// Units are those of the caller's coordinate space. There are no defaults for
// the thresholds, tolerance and sample count; they depend on the resolution of
// the input.
type Config struct {
	// FitTolerance is the largest squared distance, in units², allowed between
	// a stroke's points and its fitted curve.
	FitTolerance float64 `yaml:"fit_tolerance"`
	// AngleThreshold is the largest angle, in radians, between the
	// directions of two strokes in the same cluster (exclusive).
	AngleThreshold float64 `yaml:"angle_threshold"`
	// DistanceThreshold is the largest mean distance between two strokes in
	// the same cluster (exclusive).
	DistanceThreshold float64 `yaml:"distance_threshold"`
	// Samples is the number of intervals of each consensus polyline, which
	// thus has Samples+1 points.
	Samples int `yaml:"samples"`
	// Divisions is the number of subdivisions used to estimate the length of
	// a cubic segment. Zero selects DefaultDivisions.
	Divisions int `yaml:"divisions,omitempty"`
	// ClusterDetail is the number of intervals strokes are resampled to when
	// measuring their distance. Zero selects DefaultClusterDetail.
	ClusterDetail int `yaml:"cluster_detail,omitempty"`
	// Workers is the number of clusters aggregated concurrently. Values
	// below 2 aggregate serially.
	Workers int `yaml:"workers,omitempty"`
}

// LoadConfig decodes a YAML document into a Config and validates it.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first field whose value [Consensus] cannot work with.
//
// Consensus itself doesn't validate its configuration.
func (cfg Config) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"fit_tolerance", cfg.FitTolerance},
		{"angle_threshold", cfg.AngleThreshold},
		{"distance_threshold", cfg.DistanceThreshold},
	}
	for _, f := range positive {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.field, Value: f.value, cause: errNotFinite}
		}
		if f.value <= 0 {
			return &ConfigError{Field: f.field, Value: f.value, cause: errNotPositive}
		}
	}

	nonNegative := []struct {
		field string
		value int
	}{
		{"samples", cfg.Samples},
		{"divisions", cfg.Divisions},
		{"cluster_detail", cfg.ClusterDetail},
		{"workers", cfg.Workers},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ConfigError{Field: f.field, Value: f.value, cause: errNegative}
		}
	}
	return nil
}

func (cfg Config) withDefaults() Config {
	if cfg.Divisions <= 0 {
		cfg.Divisions = DefaultDivisions
	}
	if cfg.ClusterDetail <= 0 {
		cfg.ClusterDetail = DefaultClusterDetail
	}
	return cfg
}

func (cfg Config) clusterParams() ClusterParams {
	return ClusterParams{
		AngleThreshold:    cfg.AngleThreshold,
		DistanceThreshold: cfg.DistanceThreshold,
		Detail:            cfg.ClusterDetail,
		Divisions:         cfg.Divisions,
	}
}

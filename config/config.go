// Package config holds the tunables of the sort package.
package config

import (
	"os"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

var log = logger.GetOrCreate("cmpsort/config")

const (
	// FallbackMerge selects the in-place merge sort as the stable fallback.
	FallbackMerge = "merge"
	// FallbackTim selects the galloping run-based sort as the stable fallback.
	FallbackTim = "tim"

	// MinProbeSampleSize is the smallest accepted stability probe sample.
	// Platform sorts commonly insertion sort short inputs, which is stable,
	// so smaller samples can make an unstable sort look stable.
	MinProbeSampleSize = 50
)

// SortConfig configures the quicksort cutoff, the galloping threshold of
// the run-based sort, and the stability probe behind sort.Dispatcher.
type SortConfig struct {
	// QuickSortCutoff is the range length below which quicksort
	// switches to insertion sort.
	QuickSortCutoff int `toml:"QuickSortCutoff"`

	// MinGallop is the number of consecutive wins by one run after
	// which the galloping merge starts bulk copying. Zero disables
	// galloping.
	MinGallop int `toml:"MinGallop"`

	// ProbeSampleSize is the number of records in each probe sample.
	ProbeSampleSize int `toml:"ProbeSampleSize"`

	// ProbeTrials is the number of differently seeded samples probed.
	ProbeTrials int `toml:"ProbeTrials"`

	// Fallback names the stable sort used when the platform sort is
	// not stable: FallbackMerge or FallbackTim.
	Fallback string `toml:"Fallback"`

	// SpeculativeProbe runs the probe's trials in parallel, returning
	// as soon as one of them finds a difference.
	SpeculativeProbe bool `toml:"SpeculativeProbe"`
}

// Default returns the configuration used by the package-level sort.Sort.
func Default() SortConfig {
	return SortConfig{
		QuickSortCutoff: 12,
		MinGallop:       7,
		ProbeSampleSize: 100,
		ProbeTrials:     3,
		Fallback:        FallbackMerge,
	}
}

// Validate checks every field and returns the first problem found.
func (cfg SortConfig) Validate() error {
	if cfg.QuickSortCutoff < 1 {
		return errors.Wrapf(ErrInvalidCutoff, "got %d", cfg.QuickSortCutoff)
	}
	if cfg.MinGallop < 0 {
		return errors.Wrapf(ErrInvalidMinGallop, "got %d", cfg.MinGallop)
	}
	if cfg.ProbeSampleSize < MinProbeSampleSize {
		return errors.Wrapf(ErrInvalidSampleSize, "got %d, need at least %d", cfg.ProbeSampleSize, MinProbeSampleSize)
	}
	if cfg.ProbeTrials < 1 {
		return errors.Wrapf(ErrInvalidTrials, "got %d", cfg.ProbeTrials)
	}
	switch cfg.Fallback {
	case FallbackMerge, FallbackTim:
	default:
		return errors.Wrapf(ErrUnknownFallback, "%q", cfg.Fallback)
	}
	return nil
}

// Parse decodes a TOML document on top of the defaults and validates the
// result.
func Parse(data []byte) (SortConfig, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return SortConfig{}, errors.Wrap(err, "cannot decode sort config")
	}
	if err := cfg.Validate(); err != nil {
		return SortConfig{}, err
	}
	return cfg, nil
}

// Load reads a TOML file on top of the defaults and validates the result.
func Load(path string) (cfg SortConfig, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SortConfig{}, errors.Wrapf(err, "cannot create absolute path for %s", path)
	}
	f, err := os.Open(abs)
	if err != nil {
		return SortConfig{}, errors.Wrap(err, "cannot open sort config")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Error("cannot close sort config", "file", abs, "error", cerr.Error())
		}
	}()

	cfg = Default()
	if err = toml.NewDecoder(f).Decode(&cfg); err != nil {
		return SortConfig{}, errors.Wrapf(err, "cannot decode sort config %s", abs)
	}
	if err = cfg.Validate(); err != nil {
		return SortConfig{}, err
	}
	log.Debug("loaded sort config",
		"file", abs,
		"fallback", cfg.Fallback,
		"quicksort cutoff", cfg.QuickSortCutoff,
		"min gallop", cfg.MinGallop,
	)
	return cfg, nil
}

package config

import "github.com/pkg/errors"

// ErrInvalidCutoff signals that the quicksort insertion cutoff is below 1
var ErrInvalidCutoff = errors.New("invalid quicksort cutoff")

// ErrInvalidMinGallop signals that a negative galloping threshold was provided
var ErrInvalidMinGallop = errors.New("invalid galloping threshold")

// ErrInvalidSampleSize signals that the stability probe sample is below MinProbeSampleSize
var ErrInvalidSampleSize = errors.New("invalid stability probe sample size")

// ErrInvalidTrials signals that the stability probe would run no trials
var ErrInvalidTrials = errors.New("invalid number of stability probe trials")

// ErrUnknownFallback signals that the fallback sort is neither "merge" nor "tim"
var ErrUnknownFallback = errors.New("unknown fallback sort")

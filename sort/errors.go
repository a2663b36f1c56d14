package sort

import "github.com/pkg/errors"

// ErrNilSorter signals that a nil sorter was handed to the stability probe
var ErrNilSorter = errors.New("nil sorter")

// ErrInvalidProbe signals that the stability probe has no room for duplicates or no trials
var ErrInvalidProbe = errors.New("invalid stability probe")

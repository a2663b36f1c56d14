package sort

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/exascience/cmpsort"
	"github.com/exascience/cmpsort/compare"
	"github.com/exascience/cmpsort/config"
	"github.com/exascience/cmpsort/parallel"
	"github.com/exascience/cmpsort/sequential"
	"github.com/exascience/cmpsort/speculative"
)

const (
	// MaxProbeValues caps the number of distinct values in a probe
	// sample, so that larger samples hold more duplicates.
	MaxProbeValues = 10

	// DefaultProbeTrials is the number of samples IsStable checks.
	DefaultProbeTrials = 3
)

// A Record is an element of a stability probe sample: a sort key and the
// position the record had in the sample.
type Record struct {
	Value int
	Index int
}

func recordValue(r Record) int { return r.Value }
func recordIndex(r Record) int { return r.Index }

var probeComparators = []cmpsort.Comparator[Record]{
	compare.By(recordValue, compare.Ascending[int]),
	compare.By(recordValue, compare.Descending[int]),
	// Keeps the input order in a stable sort.
	compare.Preserve[Record](),
	// Reverses the input order in any sort.
	compare.Flip(compare.By(recordIndex, compare.Ascending[int])),
}

// A Probe compares a candidate sorter against a reference sorter on
// samples full of duplicate values.
type Probe struct {
	// SampleSize is the number of records per sample, at least
	// config.MinProbeSampleSize. Values are drawn from
	// [0, min(SampleSize/2, MaxProbeValues)).
	SampleSize int

	// Trials is the number of differently seeded samples.
	Trials int

	// Speculative runs the checks in parallel and returns as soon as
	// one of them fails. Both sorters must then be safe for concurrent
	// use, which excludes a shared TimSorter. A panic in a sorter may be
	// lost once another check has already failed.
	Speculative bool
}

func (p Probe) sample(trial int) []Record {
	values := min(max(p.SampleSize/2, 1), MaxProbeValues)
	rng := rand.New(rand.NewSource(int64(trial) + 1))
	sample := make([]Record, p.SampleSize)
	for i := range sample {
		sample[i] = Record{Value: rng.Intn(values), Index: i}
	}
	return sample
}

func sameOrder(x, y []Record) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].Index != y[i].Index {
			return false
		}
	}
	return true
}

func (p Probe) check(sample []Record, cmp cmpsort.Comparator[Record], candidate, reference cmpsort.Sorter[Record]) cmpsort.Predicate {
	return func() bool {
		got, want := slices.Clone(sample), slices.Clone(sample)
		sortGot := func() error { got = candidate.Sort(got, cmp); return nil }
		sortWant := func() error { want = reference.Sort(want, cmp); return nil }
		if p.Speculative {
			_ = parallel.Do(sortGot, sortWant)
		} else {
			_ = sortGot()
			_ = sortWant()
		}
		return sameOrder(got, want)
	}
}

// Stable sorts copies of each sample with both sorters, once per probe
// comparator: by value ascending, by value descending, keeping the input
// order, and reversing the input order. It reports true only if the
// candidate leaves every record in the same position as the reference.
// With a stable reference, that means the candidate is stable as far as
// the probe can tell.
func (p Probe) Stable(candidate, reference cmpsort.Sorter[Record]) (bool, error) {
	if candidate == nil || reference == nil {
		return false, ErrNilSorter
	}
	if p.SampleSize < config.MinProbeSampleSize || p.Trials < 1 {
		return false, errors.Wrapf(ErrInvalidProbe, "sample size %d, trials %d", p.SampleSize, p.Trials)
	}
	checks := make([]cmpsort.Predicate, 0, p.Trials*len(probeComparators))
	for trial := 0; trial < p.Trials; trial++ {
		sample := p.sample(trial)
		for _, cmp := range probeComparators {
			checks = append(checks, p.check(sample, cmp, candidate, reference))
		}
	}
	if p.Speculative {
		return speculative.And(checks...), nil
	}
	return sequential.And(checks...), nil
}

// IsStable reports whether candidate orders sampleSize duplicate-heavy
// records exactly like reference over DefaultProbeTrials samples. It
// reports false for nil sorters and for samples smaller than
// config.MinProbeSampleSize.
//
// Besides value ascending, value descending and keeping the input order,
// the probe reverses the input. It does so with a comparator that orders
// records by descending sample index rather than with one that always
// answers "swap", since the latter contradicts itself and stable sorts
// may legitimately disagree on its output.
func IsStable(candidate, reference cmpsort.Sorter[Record], sampleSize int) bool {
	stable, err := Probe{SampleSize: sampleSize, Trials: DefaultProbeTrials}.Stable(candidate, reference)
	return err == nil && stable
}

// A Dispatcher picks the sort behind Dispatch. The first time it is asked,
// it probes whether Native is stable by comparing it against MergeSort,
// and remembers the answer.
type Dispatcher struct {
	cfg    config.SortConfig
	native func() bool
}

// NewDispatcher validates cfg and returns a Dispatcher that has not probed
// anything yet.
func NewDispatcher(cfg config.SortConfig) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot create sort dispatcher")
	}
	d := &Dispatcher{cfg: cfg}
	d.native = sync.OnceValue(d.probeNative)
	return d, nil
}

func (d *Dispatcher) probeNative() bool {
	probe := Probe{
		SampleSize:  d.cfg.ProbeSampleSize,
		Trials:      d.cfg.ProbeTrials,
		Speculative: d.cfg.SpeculativeProbe,
	}
	stable, err := probe.Stable(
		cmpsort.SorterFunc[Record](Native[Record]),
		cmpsort.SorterFunc[Record](MergeSort[Record]),
	)
	if err != nil {
		log.Warn("stability probe failed, using fallback sort", "error", err.Error())
		return false
	}
	log.Debug("stability probe finished",
		"native stable", stable,
		"fallback", d.cfg.Fallback,
		"sample size", probe.SampleSize,
		"trials", probe.Trials,
	)
	return stable
}

// NativeStable reports whether the platform sort passed the stability
// probe. The probe runs on the first call only.
func (d *Dispatcher) NativeStable() bool {
	return d.native()
}

// Fallback names the stable sort Dispatch uses when the platform sort is
// not stable: config.FallbackMerge or config.FallbackTim.
func (d *Dispatcher) Fallback() string {
	return d.cfg.Fallback
}

// Config returns the configuration the Dispatcher was created with.
func (d *Dispatcher) Config() config.SortConfig {
	return d.cfg
}

// Dispatch sorts s stably: with Native if the platform sort passed the
// stability probe, and with the configured fallback otherwise.
func Dispatch[T any](d *Dispatcher, s []T, cmp cmpsort.Comparator[T]) []T {
	if d.NativeStable() {
		return Native(s, cmp)
	}
	if d.Fallback() == config.FallbackTim {
		ts := TimSorter[T]{MinGallop: d.cfg.MinGallop}
		return ts.Sort(s, cmp)
	}
	return MergeSort(s, cmp)
}

// DispatchUnstable sorts s with QuickSortWith, using the configured
// cutoff. Use it when the order of equal elements does not matter.
func DispatchUnstable[T any](d *Dispatcher, s []T, cmp cmpsort.Comparator[T]) []T {
	return QuickSortWith(s, cmp, d.cfg.QuickSortCutoff)
}

var defaultDispatcher = sync.OnceValue(func() *Dispatcher {
	d, err := NewDispatcher(config.Default())
	if err != nil {
		panic(err)
	}
	return d
})

// Sort sorts s in place, stably, with the best available algorithm: the
// platform sort if it is stable on this platform, and MergeSort otherwise.
//
// slices.SortFunc is pdqsort, which is not stable, so in practice Sort
// runs MergeSort: O(n log n) comparisons, O(n log² n) moves, and no
// allocation. Callers that prefer speed over memory can create a
// Dispatcher with Fallback set to config.FallbackTim and call Dispatch.
func Sort[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	return Dispatch(defaultDispatcher(), s, cmp)
}

// NativeStable reports whether Sort uses the platform sort.
func NativeStable() bool {
	return defaultDispatcher().NativeStable()
}

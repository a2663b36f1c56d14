package sort

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/exascience/cmpsort"
	"github.com/exascience/cmpsort/compare"
)

type namedSorter[T any] struct {
	name   string
	sort   cmpsort.SorterFunc[T]
	stable bool
}

// engine lists the algorithms implemented in this package. Native and
// Sort are left out where a test feeds comparators that are not a strict
// weak ordering, since the platform sort makes no promises for those.
func engine[T any]() []namedSorter[T] {
	return []namedSorter[T]{
		{"Insertion", Insertion[T], true},
		{"MergeSort", MergeSort[T], true},
		{"TimSort", TimSort[T], true},
		{"GallopSort", GallopSort[T], true},
		{"QuickSort", QuickSort[T], false},
	}
}

func all[T any]() []namedSorter[T] {
	return append(engine[T](),
		namedSorter[T]{"Sort", Sort[T], true},
		namedSorter[T]{"Native", Native[T], false},
	)
}

var sizes = []int{0, 1, 2, 3, 11, 12, 13, 31, 32, 33, 64, 100, 127, 1000}

func makeRandomSlice(size, limit int) []int {
	rng := rand.New(rand.NewSource(int64(size)*31 + int64(limit)))
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rng.Intn(limit)
	}
	return result
}

func makeRecords(values []int) []Record {
	records := make([]Record, len(values))
	for i, v := range values {
		records[i] = Record{Value: v, Index: i}
	}
	return records
}

func sameElements(t *testing.T, want, got []int) {
	t.Helper()
	w, g := slices.Clone(want), slices.Clone(got)
	slices.Sort(w)
	slices.Sort(g)
	require.Equal(t, w, g, "output is not a permutation of the input")
}

func ordered[T any](t *testing.T, s []T, cmp cmpsort.Comparator[T]) {
	t.Helper()
	for i := 0; i+1 < len(s); i++ {
		require.LessOrEqual(t, cmp(s[i], s[i+1]), 0, "elements %d and %d out of order", i, i+1)
	}
}

var (
	ascending  cmpsort.Comparator[int] = compare.Ascending[int]
	descending cmpsort.Comparator[int] = compare.Descending[int]
	byValue                            = compare.By(recordValue, compare.Ascending[int])
)

func TestOrder(t *testing.T) {
	for _, alg := range all[int]() {
		t.Run(alg.name, func(t *testing.T) {
			for _, size := range sizes {
				for _, limit := range []int{3, size + 1, 1 << 20} {
					input := makeRandomSlice(size, limit)

					up := alg.sort(slices.Clone(input), ascending)
					sameElements(t, input, up)
					ordered(t, up, ascending)

					down := alg.sort(slices.Clone(input), descending)
					sameElements(t, input, down)
					ordered(t, down, descending)
				}
			}
		})
	}
}

func TestPermutationWithPathologicalComparators(t *testing.T) {
	comparators := map[string]cmpsort.Comparator[int]{
		"always equal":  func(int, int) int { return 0 },
		"always after":  func(int, int) int { return 1 },
		"always before": func(int, int) int { return -1 },
		"inconsistent": func(a, b int) int {
			return (a*7+b*13)%3 - 1
		},
	}
	for _, alg := range engine[int]() {
		for name, cmp := range comparators {
			t.Run(alg.name+"/"+name, func(t *testing.T) {
				for _, size := range sizes {
					input := makeRandomSlice(size, 50)
					output := alg.sort(slices.Clone(input), cmp)
					require.Len(t, output, size)
					sameElements(t, input, output)
				}
			})
		}
	}
}

func TestAlwaysEqualKeepsInputForStableSorts(t *testing.T) {
	keep := compare.Preserve[int]()
	for _, alg := range engine[int]() {
		if !alg.stable {
			continue
		}
		input := makeRandomSlice(200, 1000)
		output := alg.sort(slices.Clone(input), keep)
		assert.Equal(t, input, output, alg.name)
	}
}

func TestStability(t *testing.T) {
	for _, alg := range all[Record]() {
		if !alg.stable {
			continue
		}
		t.Run(alg.name, func(t *testing.T) {
			records := []Record{{2, 0}, {1, 1}, {2, 2}, {3, 3}}
			sorted := alg.sort(records, byValue)
			indices := make([]int, len(sorted))
			for i, r := range sorted {
				indices[i] = r.Index
			}
			assert.Equal(t, []int{1, 0, 2, 3}, indices)

			for _, size := range sizes {
				input := makeRecords(makeRandomSlice(size, 5))
				want := slices.Clone(input)
				slices.SortStableFunc(want, byValue)
				got := alg.sort(slices.Clone(input), byValue)
				require.Equal(t, want, got, "size %d", size)

				flipped := compare.Flip(byValue)
				slices.SortStableFunc(want, flipped)
				got = alg.sort(slices.Clone(input), flipped)
				require.Equal(t, want, got, "size %d, descending", size)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	for _, alg := range all[int]() {
		t.Run(alg.name, func(t *testing.T) {
			for _, size := range sizes {
				sorted := alg.sort(makeRandomSlice(size, 1<<20), ascending)
				again := alg.sort(slices.Clone(sorted), ascending)
				assert.Equal(t, sorted, again)
			}
		})
	}

	// Equal keys tell the algorithms apart: the records must not move.
	for _, alg := range engine[Record]() {
		t.Run(alg.name+"/records", func(t *testing.T) {
			for _, size := range sizes {
				sorted := makeRecords(makeRandomSlice(size, 4))
				slices.SortStableFunc(sorted, byValue)
				again := alg.sort(slices.Clone(sorted), byValue)
				assert.Equal(t, sorted, again)
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	for _, alg := range all[int]() {
		t.Run(alg.name, func(t *testing.T) {
			assert.Empty(t, alg.sort([]int{}, ascending))
			assert.Nil(t, alg.sort(nil, ascending))
			assert.Equal(t, []int{7}, alg.sort([]int{7}, ascending))
			assert.Equal(t, []int{1, 2}, alg.sort([]int{2, 1}, ascending))
			assert.Equal(t, []int{1, 2}, alg.sort([]int{1, 2}, ascending))
			assert.Equal(t, []int{2, 1}, alg.sort([]int{1, 2}, descending))

			for _, n := range []int{11, 12, 13, 31, 32, 33} {
				input := make([]int, n)
				for i := range input {
					input[i] = n - i
				}
				output := alg.sort(input, ascending)
				for i := range output {
					require.Equal(t, i+1, output[i], "length %d", n)
				}
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	for _, alg := range all[int]() {
		assert.Equal(t, []int{1, 2, 3, 4}, alg.sort([]int{3, 1, 4, 2}, ascending), alg.name)
		assert.Equal(t, []int{4, 3, 2, 1}, alg.sort([]int{3, 1, 4, 2}, descending), alg.name)
	}
}

func TestSortReturnsSameSlice(t *testing.T) {
	for _, alg := range all[int]() {
		input := makeRandomSlice(50, 10)
		output := alg.sort(input, ascending)
		require.Len(t, output, len(input))
		assert.Same(t, &input[0], &output[0], alg.name)
	}
}

type countdown struct {
	calls int
}

func (c *countdown) compare(a, b int) int {
	c.calls--
	if c.calls < 0 {
		panic("comparator failed")
	}
	return compare.Ascending(a, b)
}

func TestComparatorPanicKeepsElements(t *testing.T) {
	for _, alg := range engine[int]() {
		t.Run(alg.name, func(t *testing.T) {
			for _, size := range []int{13, 33, 100, 500} {
				for _, calls := range []int{0, 1, 10, 50, 200, 1000} {
					input := makeRandomSlice(size, 20)
					s := slices.Clone(input)
					c := &countdown{calls: calls}
					func() {
						defer func() { _ = recover() }()
						alg.sort(s, c.compare)
					}()
					sameElements(t, input, s)
				}
			}
		})
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{}, ascending))
	assert.True(t, IsSorted([]int{1}, ascending))
	assert.True(t, IsSorted([]int{1, 1, 2}, ascending))
	assert.False(t, IsSorted([]int{2, 1}, ascending))

	large := make([]int, 1<<16)
	for i := range large {
		large[i] = i / 3
	}
	assert.True(t, IsSorted(large, ascending))
	large[len(large)/2] = -1
	assert.False(t, IsSorted(large, ascending))
	large[len(large)/2] = large[len(large)/2-1]
	large[len(large)-1] = 0
	assert.False(t, IsSorted(large, ascending))
}

func TestIsSortedComparatorPanicReachesCaller(t *testing.T) {
	large := make([]int, 1<<16)
	for i := range large {
		large[i] = i
	}
	failure := errors.New("comparator failed")
	last := len(large) - 1
	failing := func(a, b int) int {
		if a == last || b == last {
			panic(failure)
		}
		return compare.Ascending(a, b)
	}
	assert.PanicsWithValue(t, failure, func() { IsSorted(large, failing) })
	assert.PanicsWithValue(t, failure, func() { QuickSort(slices.Clone(large), failing) })

	// An earlier out-of-order pair ends the scan before the failing element.
	large[1], large[2] = large[2], large[1]
	assert.NotPanics(t, func() { assert.False(t, IsSorted(large, failing)) })
}

func TestIsSortedCallsComparatorInOrder(t *testing.T) {
	large := make([]int, 1<<16)
	for i := range large {
		large[i] = i / 2
	}
	calls, previous := 0, -1
	counting := func(a, b int) int {
		calls++
		require.GreaterOrEqual(t, a, previous)
		previous = a
		return compare.Ascending(a, b)
	}
	assert.True(t, IsSorted(large, counting))
	assert.Equal(t, len(large)-1, calls)
}

func TestTypedSlices(t *testing.T) {
	ints := makeRandomSlice(500, 100)
	Ints(ints)
	assert.True(t, IntsAreSorted(ints))
	assert.False(t, IntsAreSorted([]int{3, 2}))

	fs := []float64{3.5, -1, math.Inf(1), 0, math.Inf(-1), 2.25, 0}
	Float64s(fs)
	assert.True(t, Float64sAreSorted(fs))
	assert.True(t, floats.Equal([]float64{math.Inf(-1), -1, 0, 0, 2.25, 3.5, math.Inf(1)}, fs))

	withNaN := []float64{1, math.NaN(), -2, math.NaN()}
	Float64s(withNaN)
	assert.True(t, math.IsNaN(withNaN[0]))
	assert.True(t, math.IsNaN(withNaN[1]))
	assert.True(t, floats.Equal([]float64{-2, 1}, withNaN[2:]))
	assert.False(t, Float64sAreSorted([]float64{1, math.NaN()}))

	strs := []string{"pear", "apple", "fig", "apple"}
	Strings(strs)
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, strs)
	assert.True(t, StringsAreSorted(strs))
	assert.False(t, StringsAreSorted([]string{"b", "a"}))
}

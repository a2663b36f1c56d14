package cmpsort

type (
	// A Comparator orders two values of the same type. It returns a
	// negative number if a sorts before b, a positive number if a sorts
	// after b, and zero if neither comes first.
	//
	// A Comparator must give the same answer for the same pair during one
	// sort, and must not modify its arguments. It need not be a total
	// order: ties are expected.
	Comparator[T any] func(a, b T) int

	// Interface is implemented by types that know how to compare two
	// values. Any Interface can be turned into a Comparator with its
	// method value, for example cmpsort.Comparator[T](x.Compare).
	Interface[T any] interface {
		Compare(a, b T) int
	}

	// A Sorter sorts a slice in place according to a comparator, and
	// returns the same slice.
	Sorter[T any] interface {
		Sort(s []T, cmp Comparator[T]) []T
	}

	// SorterFunc adapts an ordinary function to the Sorter interface.
	SorterFunc[T any] func(s []T, cmp Comparator[T]) []T

	// A Predicate is a function that receives no parameters and returns
	// a bool.
	Predicate func() bool

	// A RangePredicate is a function that receives a range from low to
	// high, with 0 <= low <= high, and returns a bool.
	RangePredicate func(low, high int) bool
)

// Compare implements Interface.
func (cmp Comparator[T]) Compare(a, b T) int {
	return cmp(a, b)
}

// Sort implements Sorter.
func (f SorterFunc[T]) Sort(s []T, cmp Comparator[T]) []T {
	return f(s, cmp)
}

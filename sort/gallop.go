package sort

import "github.com/exascience/cmpsort"

// gallopUpper returns the first index at or after hint where the sorted
// run stops comparing <= key, or len(run). It probes run[hint],
// run[hint+2], run[hint+6], ... until it overshoots, then binary searches
// the last gap. Ties with key are skipped, so bulk-copying run[hint:result]
// ahead of key keeps the merge stable when key comes from the right run.
func gallopUpper[T any](key T, run []T, hint int, cmp cmpsort.Comparator[T]) int {
	maxOfs := len(run) - hint
	if maxOfs <= 0 {
		return len(run)
	}
	// run[hint : hint+lastOfs] are known to be <= key.
	lastOfs, ofs := 0, 1
	for ofs < maxOfs && cmp(run[hint+ofs-1], key) <= 0 {
		lastOfs = ofs
		ofs = (ofs << 1) + 1
		if ofs <= 0 || ofs > maxOfs { // int overflow
			ofs = maxOfs
		}
	}
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if cmp(run[hint+m], key) <= 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return hint + ofs
}

// gallopLower returns the first index at or after hint where the sorted
// run stops comparing < key, or len(run). The search proceeds as in
// gallopUpper, but elements equal to key are not skipped, so bulk-copying
// run[hint:result] ahead of key keeps the merge stable when key comes from
// the left run.
func gallopLower[T any](key T, run []T, hint int, cmp cmpsort.Comparator[T]) int {
	maxOfs := len(run) - hint
	if maxOfs <= 0 {
		return len(run)
	}
	lastOfs, ofs := 0, 1
	for ofs < maxOfs && cmp(run[hint+ofs-1], key) < 0 {
		lastOfs = ofs
		ofs = (ofs << 1) + 1
		if ofs <= 0 || ofs > maxOfs { // int overflow
			ofs = maxOfs
		}
	}
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if cmp(run[hint+m], key) < 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return hint + ofs
}

package history

// keep modifies the slice in place, returning only the items that pass keepfn.
//
// Warning: slices sharing the backing array see the shuffled items too.
func keep[S ~[]T, T any](a S, keepfn func(T) bool) S {
	good := 0
	for i := range a {
		if keepfn(a[i]) {
			if i != good {
				a[good] = a[i]
			}
			good++
		}
	}
	return a[:good]
}

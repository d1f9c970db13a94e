package utils

// RemoveIf removes all elements matching pred from the given slice and returns the shortened slice.
//
// Unlike a swap-based removal, the remaining elements keep their relative order. The backing array is reused and
// the now unused tail is zeroed so that removed pointers don't stay reachable.
func RemoveIf[T any](slice []T, pred func(T) bool) []T {
	n := 0
	for _, v := range slice {
		if !pred(v) {
			slice[n] = v
			n++
		}
	}

	var zero T
	for i := n; i < len(slice); i++ {
		slice[i] = zero
	}

	return slice[:n]
}

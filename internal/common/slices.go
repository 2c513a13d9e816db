package common

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Pairs walks s two elements at a time and calls yield for every complete pair.
// A trailing element without a partner is returned as leftover.
func Pairs[S ~[]E, E any](s S, yield func(first, second E)) (leftover E, odd bool) {
	i := 0
	for ; i+1 < len(s); i += 2 {
		yield(s[i], s[i+1])
	}

	if i < len(s) {
		return s[i], true
	}

	return leftover, false
}

package patch

import "slices"

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Slice returns a copy of override when it was supplied, otherwise fallback.
// An empty but non-nil override replaces fallback.
func Slice[T any](override, fallback []T) []T {
	if override != nil {
		return slices.Clone(override)
	}
	return fallback
}

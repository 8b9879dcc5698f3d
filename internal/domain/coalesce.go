package domain

// ClampPriority resolves a raw priority value: zero means "unset" and
// takes the default, anything outside 1..5 is clamped to the range.
func ClampPriority(p int) int {
	if p == 0 {
		return PriorityDefault
	}
	if p < PriorityHighest {
		return PriorityHighest
	}
	if p > PriorityLowest {
		return PriorityLowest
	}
	return p
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// NonNegative floors negative minute quantities at zero. Durations and
// setup times are never allowed below zero.
func NonNegative(min int) int {
	if min < 0 {
		return 0
	}
	return min
}

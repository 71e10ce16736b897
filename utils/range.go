package utils

import "primfn/primitive"

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T primitive.Number](min T, value T, max T) bool {
	return min <= value && value <= max
}

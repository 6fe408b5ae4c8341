// Package utils provides small conversion helpers shared by the API layer.
package utils

import "strconv"

// ConvertToInt converts a query-string value to an int, returning 0 when the
// value is not numeric
func ConvertToInt(value string) int {
	converted, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return converted
}

package utils

import (
	"fmt"
	"strconv"
)

// NextOrderNumber returns the next sequential order number for a job list:
// max of the numeric values (non-numeric counts as 0) plus one, zero-padded
// to two digits. Numbers above 99 keep their natural width.
func NextOrderNumber(existing []string) string {
	max := 0
	for _, s := range existing {
		if n, err := strconv.Atoi(s); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%02d", max+1)
}

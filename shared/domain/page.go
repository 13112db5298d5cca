package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const PageSize = 10

type Page struct {
	Posts       []Post `json:"posts"`
	Number      int    `json:"number"`
	NumPages    int    `json:"num_pages"`
	Count       int    `json:"count"`
	HasNext     bool   `json:"has_next"`
	HasPrevious bool   `json:"has_previous"`
}

// ParsePageNumber reads the ?page= query value. Absent or non-numeric values mean the first page,
// out of range numbers are clamped later by the paginator. Numbers too big for int saturate.
func ParsePageNumber(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return math.MinInt
			}
			return math.MaxInt
		}
		return 1
	}
	return page
}

package handler

import (
	"strconv"
	"strings"

	"github.com/maxviazov/storefront-pager/internal/service"
)

// queryInt parses an optional integer query parameter. Absent or blank means 0;
// anything that is not an integer is recorded as a field error.
func queryInt(raw, field string, ferrs *[]service.FieldError) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*ferrs = append(*ferrs, service.FieldError{Field: field, Message: "must be an integer"})
		return 0
	}
	return n
}

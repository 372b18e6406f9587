package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/listo/internal/models"
)

// ParseTaskNumber parses a 1-based task number argument
func ParseTaskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, &UsageError{Err: fmt.Errorf("invalid task number %q (must be a positive integer)", arg)}
	}
	return n, nil
}

// ParseOptionalDate parses a YYYY-MM-DD flag value; "" and "none" give nil
func ParseOptionalDate(s string) (*models.Date, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil, nil
	}
	return models.ParseDeadline(s)
}

// ParseOptionalString turns a flag value into an optional field;
// "" and "none" give nil
func ParseOptionalString(s string) *string {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil
	}
	return models.StringPtr(s)
}

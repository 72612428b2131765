package httputil

import (
	"strconv"

	apperrors "github.com/allisson/contacts/internal/errors"
)

// ParseIDParam parses a numeric route parameter into a positive identifier.
// Returns ErrInvalidInput for anything that is not a positive base-10 integer.
func ParseIDParam(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid id parameter")
	}
	return id, nil
}

package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"unicode/utf8"
)

const (
	limitMin     = 1
	limitMax     = 100
	limitDefault = 10

	searchMinLen = 3
	searchMaxLen = 200
)

// Limit parses the optional "limit" query parameter. Missing values fall
// back to the default; present values must be an integer in [1,100].
func Limit(raw string) (int, *FieldError) {
	if raw == "" {
		return limitDefault, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < limitMin || limit > limitMax {
		return 0, &FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must be a number between %d and %d", limitMin, limitMax),
		}
	}
	return limit, nil
}

// Page parses the required "page" query parameter as a non-negative integer.
func Page(raw string) (int, *FieldError) {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, &FieldError{
			Field:   "page",
			Message: "page must be a number greater than or equal 0",
		}
	}
	return page, nil
}

// ID parses a required identifier parameter as a non-negative integer. The
// failure message is scoped to the given field name.
func ID(field, raw string) (uint, *FieldError) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a number greater than or equal 0", field),
		}
	}
	return uint(id), nil
}

// OptionalID parses an identifier parameter that may be absent.
func OptionalID(field, raw string) (*uint, *FieldError) {
	if raw == "" {
		return nil, nil
	}
	id, fe := ID(field, raw)
	if fe != nil {
		return nil, fe
	}
	return &id, nil
}

// StrictQuery rejects query keys outside the allowed set, one field error per
// unknown key. Validated query objects have a strict shape just like bodies.
func StrictQuery(values url.Values, allowed ...string) []FieldError {
	known := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		known[key] = struct{}{}
	}

	var unknown []string
	for key := range values {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	var fields []FieldError
	for _, key := range unknown {
		fields = append(fields, FieldError{
			Field:   key,
			Message: fmt.Sprintf("%s is not allowed", key),
		})
	}
	return fields
}

// Search parses the optional free-text "search" query parameter, bounded to
// 3-200 characters when present.
func Search(raw string) (*string, *FieldError) {
	if raw == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(raw); n < searchMinLen || n > searchMaxLen {
		return nil, &FieldError{
			Field:   "search",
			Message: fmt.Sprintf("search must be between %d and %d characters", searchMinLen, searchMaxLen),
		}
	}
	return &raw, nil
}

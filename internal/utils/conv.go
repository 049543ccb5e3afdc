package utils

import (
	"errors"
	"strconv"
)

var ErrMalformedID = errors.New("malformed id")

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// ParseID parses a numeric path parameter.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrMalformedID
	}
	return uint(id), nil
}

package utils

import (
	"strconv"
	"strings"
)

// Dash is shown in place of null or empty values in human-readable views.
const Dash = "-"

// StringOrDash dereferences s, or returns Dash if it is nil.
func StringOrDash(s *string) string {
	if s == nil {
		return Dash
	}
	return *s
}

// Int64OrDash formats n, or returns Dash if it is nil.
func Int64OrDash(n *int64) string {
	if n == nil {
		return Dash
	}
	return strconv.FormatInt(*n, 10)
}

// JoinOrDash joins items with sep, or returns Dash for an empty list.
func JoinOrDash(items []string, sep string) string {
	if len(items) == 0 {
		return Dash
	}
	return strings.Join(items, sep)
}

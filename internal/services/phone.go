package services

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePattern accepts an optional leading '+' followed by 2 to 15 digits
// not starting with zero, i.e. an E.164-style number.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// phoneStripper removes the separators people commonly type into phone
// fields before validation.
var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhone strips spaces, dashes, and parentheses from a raw phone
// number and validates the result. It is a pure function shared by contact
// creation and update, so both paths agree on what a duplicate number is.
func NormalizePhone(raw string) (string, error) {
	normalized := phoneStripper.Replace(raw)
	if !phonePattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, raw)
	}
	return normalized, nil
}

package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const maxPickupCodeLen = 32

// IsPickupCode reports whether s is a numeric pickup code with a valid Luhn check digit.
func IsPickupCode(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxPickupCodeLen {
		return false
	}
	return goluhn.Validate(s) == nil
}

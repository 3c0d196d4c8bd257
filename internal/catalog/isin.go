package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateISIN checks that isin is a well-formed ISIN (ISO 6166) with a
// correct check digit. It returns a *errors.ValidationError describing the
// first problem found.
func ValidateISIN(isin string) error {
	if isin == "" {
		return werrors.Missing("isin")
	}

	if len(isin) != 12 {
		return werrors.Invalid("isin", isin, fmt.Sprintf("must be 12 characters, got %d", len(isin)))
	}

	if !isinRegex.MatchString(isin) {
		return werrors.Invalid("isin", isin, "must be 2 uppercase letters, 9 alphanumeric characters and 1 digit")
	}

	want := CheckDigit(isin[:11])
	got := int(isin[11] - '0')

	if want != got {
		return werrors.Invalid("isin", isin, fmt.Sprintf("check digit is %d, expected %d", got, want))
	}

	return nil
}

// CheckDigit computes the ISIN check digit for the first 11 characters.
// Letters expand to two digits (A=10 … Z=35) and the Luhn algorithm runs over
// the resulting digit string, doubling from the rightmost digit.
func CheckDigit(body string) int {
	var digits strings.Builder
	for _, r := range body {
		if r >= 'A' && r <= 'Z' {
			digits.WriteString(strconv.Itoa(int(r-'A') + 10))
		} else {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	sum := 0
	double := true

	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
		}

		sum += d/10 + d%10
		double = !double
	}

	return (10 - sum%10) % 10
}

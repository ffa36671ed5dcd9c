// Package validation holds the input rules for raffle purchases. All rules
// run before any gateway call; a request that fails here never leaves the
// process.
package validation

import (
	"strings"
	"unicode"

	"rifapix/internal/models"
)

const (
	// MinPhoneDigits is the minimum digit count for a Brazilian phone
	// number (area code plus subscriber number).
	MinPhoneDigits = 10

	// DocumentDigits is the exact digit count of a CPF.
	DocumentDigits = 11
)

// DigitsOnly strips everything that is not a decimal digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MissingFields returns the required purchase fields that are absent, in
// the order the API documents them.
func MissingFields(req *models.PurchaseRequest) []string {
	var missing []string
	if req.Identifier == "" {
		missing = append(missing, "identifier")
	}
	if req.Amount == 0 {
		missing = append(missing, "amount")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Tickets == 0 {
		missing = append(missing, "tickets")
	}
	return missing
}

// ValidPhone reports whether the phone has enough digits once formatting
// is stripped.
func ValidPhone(phone string) bool {
	return len(DigitsOnly(phone)) >= MinPhoneDigits
}

// NormalizeDocument strips CPF formatting and returns the result only when
// exactly 11 digits remain. Anything else yields an empty string so the
// charge goes out without a document; a malformed CPF is never an error.
func NormalizeDocument(document string) string {
	clean := DigitsOnly(document)
	if len(clean) == DocumentDigits {
		return clean
	}
	return ""
}

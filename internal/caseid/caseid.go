// Package caseid recognizes TJSP unified case numbers
// (NNNNNNN-DD.AAAA.8.26.FFFF) in user input.
package caseid

import (
	"regexp"
	"strings"
)

var (
	scanPattern  = regexp.MustCompile(`[0-9]{7}-[0-9]{2}\.[0-9]{4}\.8\.26\.[0-9]{4}`)
	exactPattern = regexp.MustCompile(`^[0-9]{7}-[0-9]{2}\.[0-9]{4}\.8\.26\.[0-9]{4}$`)
)

// Valid reports whether s is exactly one unified case number.
func Valid(s string) bool {
	return exactPattern.MatchString(s)
}

// FromList splits a comma-separated candidate list and keeps the tokens that
// are valid case numbers, in order, duplicates included.
func FromList(s string) []string {
	var numbers []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if Valid(tok) {
			numbers = append(numbers, tok)
		}
	}
	return numbers
}

// Scan extracts every case number embedded in free text, in order of first
// appearance, duplicates included.
func Scan(text string) []string {
	var numbers []string
	for _, line := range strings.Split(text, "\n") {
		numbers = append(numbers, scanPattern.FindAllString(line, -1)...)
	}
	return numbers
}

// Recognize applies the submission contract: a non-empty candidate list takes
// precedence over free text. Returns nil when nothing matches; surfacing that
// as an input error is the caller's job.
func Recognize(list, freeText string) []string {
	if strings.TrimSpace(list) != "" {
		return FromList(list)
	}
	if freeText != "" {
		return Scan(freeText)
	}
	return nil
}

// Split breaks a valid case number into the two query parameters the e-SAJ
// search endpoints expect: the 15-char number+digit+year part and the 4-char
// forum suffix.
func Split(number string) (digitYear, forum string) {
	return number[:15], number[len(number)-4:]
}

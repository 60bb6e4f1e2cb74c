package router

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// First maximal run of decimal digits anywhere in the prompt.
	priceRe = regexp.MustCompile(`\d+`)
	// Everything after the first case-sensitive "in " up to the end of line.
	locationRe = regexp.MustCompile(`in (.+)`)
)

// Intent holds what the router could extract from a prompt. Zero values
// mean "absent".
type Intent struct {
	PriceCeiling int
	Location     string
}

// Structured reports whether both a price ceiling and a location were found.
func (i Intent) Structured() bool {
	return i.PriceCeiling > 0 && i.Location != ""
}

// ParseIntent extracts an optional price ceiling and location from prompt.
//
// The extraction is deliberately naive: any number counts as the price
// (a street number included) and any "in " starts the location, even
// inside a word such as "within".
func ParseIntent(prompt string) Intent {
	var out Intent

	if digits := priceRe.FindString(prompt); digits != "" {
		// Zero and values that overflow int are treated as absent.
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			out.PriceCeiling = n
		}
	}

	if m := locationRe.FindStringSubmatch(prompt); m != nil {
		out.Location = strings.TrimSpace(m[1])
	}

	return out
}

// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

import (
	"regexp"
	"strconv"
	"strings"
)

// eraTolerance widens era ranges on both ends to absorb attribution and
// stylistic overlap at era boundaries.
const eraTolerance = 20

var (
	yearPattern    = regexp.MustCompile(`\b(\d{4})\b`)
	centuryPattern = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\s*century`)
	eraRangeExpr   = regexp.MustCompile(`^(\d{4})-(\d{4})`)
)

// ExtractYear pulls a representative year out of a free-text date string.
// Museum date fields vary wildly: "1503", "c. 1665", "1889-1890",
// "ca. 1510-1515", "19th century", "early 16th century". The first 4-digit
// number wins; century notation falls back to a decade heuristic
// (early=+10, late=+80, mid or unqualified=+50). Returns ok=false when no
// year can be extracted.
func ExtractYear(dateString string) (int, bool) {
	if dateString == "" {
		return 0, false
	}
	s := strings.ToLower(strings.TrimSpace(dateString))

	if m := yearPattern.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return year, true
		}
	}

	if m := centuryPattern.FindStringSubmatch(s); m != nil {
		century, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		base := (century - 1) * 100

		switch {
		case strings.Contains(s, "early"):
			return base + 10, true
		case strings.Contains(s, "late"):
			return base + 80, true
		default:
			// "mid" and unqualified both land mid-century.
			return base + 50, true
		}
	}

	return 0, false
}

// InEra reports whether a painting's date string falls within an era's
// year range, with eraTolerance years of slack on both ends.
//
// Undated works fail the test: when no year is extractable, correctness
// cannot be determined, and era views deliberately exclude such records.
// A malformed era range disables filtering entirely and returns true.
func InEra(dateString, eraYears string) bool {
	year, ok := ExtractYear(dateString)
	if !ok {
		return false
	}

	m := eraRangeExpr.FindStringSubmatch(eraYears)
	if m == nil {
		return true
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])

	return start-eraTolerance <= year && year <= end+eraTolerance
}

// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

import "strings"

// minSuggestQueryLen is the shortest query that can receive a suggestion.
// Shorter queries match too much of the vocabulary to be useful.
const minSuggestQueryLen = 3

// SuggestSpelling proposes a corrected artist name for a probably-misspelled
// search query, matched against the fixed vocabulary of known artist names.
//
// Each vocabulary entry is scored as the minimum Levenshtein distance between
// the query and (a) each word of the entry and (b) the full entry string,
// case-insensitively. An entry qualifies when its distance is at most
// max(2, len(query)/3) and greater than zero — an exact match needs no
// suggestion. The globally closest entry wins; ties go to the entry listed
// first in the vocabulary.
func SuggestSpelling(query string) (string, bool) {
	return suggestSpelling(query, KnownArtists)
}

func suggestSpelling(query string, vocabulary []string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < minSuggestQueryLen {
		return "", false
	}

	threshold := max(2, len([]rune(q))/3)

	bestMatch := ""
	bestDistance := threshold + 1

	for _, entry := range vocabulary {
		entryLower := strings.ToLower(entry)

		distance := levenshtein(q, entryLower)
		for _, word := range strings.Fields(entryLower) {
			if len([]rune(word)) < minSuggestQueryLen {
				continue
			}
			if d := levenshtein(q, word); d < distance {
				distance = d
			}
		}

		if distance > 0 && distance <= threshold && distance < bestDistance {
			bestDistance = distance
			bestMatch = entry
		}
	}

	if bestMatch == "" {
		return "", false
	}
	return bestMatch, true
}

// levenshtein computes the classic edit distance between two strings using
// the two-row dynamic programming formulation. Inputs are compared by rune
// so accented artist names ("Cézanne", "Krøyer") count as single edits.
func levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) < len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, c1 := range r1 {
		curr[0] = i + 1
		for j, c2 := range r2 {
			cost := 0
			if c1 != c2 {
				cost = 1
			}
			curr[j+1] = min(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

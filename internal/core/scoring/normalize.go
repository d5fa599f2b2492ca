// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import (
	"regexp"
	"strings"

	"github.com/taibuivan/folio/pkg/slug"
)

// # Title Normalization
//
// Duplicate detection compares titles after this exact policy, and nothing fuzzier:
//
//  1. Drop parenthesised and bracketed segments ("(1st ed.)", "[Vol. 2]").
//  2. Fold to lowercase ASCII words (accents removed, punctuation dropped, "&" -> "and").
//  3. Drop one leading article ("the", "a", "an").
//  4. Repeatedly drop trailing volume and edition qualifiers
//     ("vol 2", "volume ii", "in three volumes", "3 vols", "first edition", "2nd ed").
//
// Two titles are duplicates only when the resulting word lists are identical.

var (
	bracketed = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

	numeralWord = regexp.MustCompile(`^([0-9]+|[ivxlcdm]+)$`)
	countWord   = regexp.MustCompile(`^([0-9]+|one|two|three|four|five|six|seven|eight|nine|ten)$`)
	ordinalWord = regexp.MustCompile(`^([0-9]+(st|nd|rd|th)|first|second|third|fourth|fifth|sixth|new|revised|limited|illustrated|definitive|library)$`)
)

var (
	volumeMarkers  = wordSet("vol", "vols", "volume", "volumes", "v", "book", "bk", "part", "pt", "no")
	pluralVolumes  = wordSet("vol", "vols", "volume", "volumes")
	editionMarkers = wordSet("edition", "ed", "edn", "printing", "impression", "issue")
	articles       = wordSet("the", "a", "an")
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// normalizeTitle applies the duplicate-matching policy and returns a single
// space-joined key. An empty result means the title carries no comparable words.
func normalizeTitle(title string) string {
	title = bracketed.ReplaceAllString(title, " ")
	title = strings.ReplaceAll(title, "&", " and ")

	folded := slug.From(title)
	if folded == "" {
		return ""
	}
	words := strings.Split(folded, "-")

	if len(words) > 1 && articles[words[0]] {
		words = words[1:]
	}

	for {
		trimmed := trimQualifier(words)
		if len(trimmed) == len(words) || len(trimmed) == 0 {
			break
		}
		words = trimmed
	}

	return strings.Join(words, " ")
}

// trimQualifier removes one trailing qualifier, or returns words unchanged.
func trimQualifier(words []string) []string {
	n := len(words)

	// "... in three volumes"
	if n >= 3 && words[n-3] == "in" && countWord.MatchString(words[n-2]) && pluralVolumes[words[n-1]] {
		return words[:n-3]
	}

	if n >= 2 {
		last, prev := words[n-1], words[n-2]

		// "... vol 2", "... volume ii"
		if volumeMarkers[prev] && numeralWord.MatchString(last) {
			return words[:n-2]
		}
		// "... 3 vols"
		if countWord.MatchString(prev) && pluralVolumes[last] {
			return words[:n-2]
		}
		// "... first edition", "... 2nd ed"
		if ordinalWord.MatchString(prev) && editionMarkers[last] {
			return words[:n-2]
		}
	}

	return words
}

package utils

import (
	"strings"
	"unicode/utf8"
)

// The schedule generator is instructed to prepend the trip region to every
// place name ("제주 몽상드애월") so keyword search does not pick up same-named
// places in other regions. Kakao stores names without that qualifier, so the
// prefix has to come off again before any comparison.
var regionPrefixes = []string{
	"서울 ", "부산 ", "제주 ", "제주도 ", "강원 ", "강릉 ",
	"인천 ", "광주 ", "대전 ", "대구 ", "울산 ", "경기 ",
}

// Region words that carry no identity on their own. Tokens equal to one of
// these are useless for matching ("부산 가야밀면" -> only "가야밀면" counts).
var regionStopwords = []string{
	"부산", "제주", "서울", "강원", "인천", "광주",
	"대전", "대구", "울산", "경기", "제주도", "부산광역시",
}

// NormalizePlaceName trims the name and strips at most one known region
// prefix from the front. Checking stops at the first match, so a name can
// never lose more than its AI-added qualifier.
func NormalizePlaceName(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}
	for _, prefix := range regionPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}
	return cleaned
}

// FoldName collapses all whitespace and lowercases, producing the comparison
// form used by every matching tier.
func FoldName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// MatchTokens splits a search name into the tokens worth matching on:
// single-rune tokens and bare region words are dropped.
func MatchTokens(searchName string) []string {
	var tokens []string
	for _, t := range strings.Fields(searchName) {
		if utf8.RuneCountInString(t) <= 1 {
			continue
		}
		if isRegionStopword(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// RegionPrefix shortens a destination to its first two runes, the form the
// address filter matches on ("서울특별시" -> "서울", "부산광역시" -> "부산").
func RegionPrefix(destination string) string {
	r := []rune(strings.TrimSpace(destination))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

func isRegionStopword(token string) bool {
	for _, w := range regionStopwords {
		if token == w {
			return true
		}
	}
	return false
}

package scoring

import (
	"math"
	"strings"
)

// Similarity primitives. All are pure and return an int score in [0,100];
// missing or malformed input scores 0 rather than propagating NaN.

// TextSimilarity compares two strings case-insensitively. Exact matches score
// 100; otherwise the score is the count of a's words found in b over the size
// of the union of both word sets.
func TextSimilarity(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}

	union := make(map[string]struct{}, len(wordsA)+len(wordsB))
	matched := 0
	for _, w := range wordsA {
		if _, ok := setB[w]; ok {
			matched++
		}
		union[w] = struct{}{}
	}
	for _, w := range wordsB {
		union[w] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return clampScore(roundScore(float64(matched) / float64(len(union)) * 100))
}

// ArrayOverlap scores how many elements of list1 appear in list2, over the
// size of the union of both lists. Comparison is case-insensitive and
// whitespace-trimmed.
func ArrayOverlap(list1, list2 []string) int {
	if len(list1) == 0 || len(list2) == 0 {
		return 0
	}

	set2 := make(map[string]struct{}, len(list2))
	for _, v := range list2 {
		set2[normalizeItem(v)] = struct{}{}
	}

	union := make(map[string]struct{}, len(list1)+len(list2))
	matched := 0
	for _, v := range list1 {
		n := normalizeItem(v)
		if _, ok := set2[n]; ok {
			matched++
		}
		union[n] = struct{}{}
	}
	for n := range set2 {
		union[n] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return clampScore(roundScore(float64(matched) / float64(len(union)) * 100))
}

// RangeMatch scores a value against an inclusive [min,max] preference band.
// Values inside the band score 100. Shortfall below min decays at full rate;
// excess above max decays at half rate, deliberately favoring generous upper
// bounds. Invalid bounds score 0.
func RangeMatch(value, min, max float64) int {
	if math.IsNaN(value) || math.IsNaN(min) || math.IsNaN(max) || min > max {
		return 0
	}
	if value >= min && value <= max {
		return 100
	}
	if value < min {
		if min <= 0 {
			return 0
		}
		return clampScore(roundScore((1 - (min-value)/min) * 100))
	}
	if max <= 0 {
		return 0
	}
	return clampScore(roundScore((1 - 0.5*(value-max)/max) * 100))
}

// DistanceDecay scores 100 at or under the desired maximum distance, then
// decays linearly to 0 at twice the maximum.
func DistanceDecay(distance, maxDesired float64) int {
	if math.IsNaN(distance) || math.IsNaN(maxDesired) || maxDesired <= 0 {
		return 0
	}
	if distance <= maxDesired {
		return 100
	}
	return clampScore(roundScore((1 - (distance-maxDesired)/maxDesired) * 100))
}

// ScaleMatch scores how close a value sits to itself on an ordered scale such
// as experience levels. Exact position scores 100, the farthest position 0.
// Values outside the scale score 50: an unrecognized level is unknown data,
// not a mismatch.
func ScaleMatch(value, target string, scale []string) int {
	vi := scaleIndex(value, scale)
	ti := scaleIndex(target, scale)
	if vi < 0 || ti < 0 {
		return 50
	}
	if vi == ti {
		return 100
	}
	maxIndex := len(scale) - 1
	if maxIndex <= 0 {
		return 50
	}
	delta := vi - ti
	if delta < 0 {
		delta = -delta
	}
	return clampScore(100 - roundScore(float64(delta)/float64(maxIndex)*100))
}

func scaleIndex(value string, scale []string) int {
	v := normalizeItem(value)
	for i, s := range scale {
		if normalizeItem(s) == v {
			return i
		}
	}
	return -1
}

func normalizeItem(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// roundScore rounds half away from zero, matching the engine-wide rounding
// policy pinned by the aggregation tests.
func roundScore(f float64) int {
	return int(math.Round(f))
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// ClampScore bounds a score to [0,100].
func ClampScore(n int) int {
	return clampScore(n)
}

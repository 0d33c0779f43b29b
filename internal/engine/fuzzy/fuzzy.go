package fuzzy

import (
	"math"
	"sort"
)

const (
	// DefaultMaxDistanceRatio bounds suggestion distance relative to the
	// target length. API identifiers vary more than screen ids, so callers
	// validating dependsOn entries pass LooseMaxDistanceRatio instead.
	DefaultMaxDistanceRatio = 0.4
	LooseMaxDistanceRatio   = 0.5

	DefaultMaxSuggestions = 3
)

// Distance computes the Levenshtein edit distance between a and b with
// unit costs for insert, delete, and substitute.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // delete
				curr[j-1]+1,    // insert
				prev[j-1]+cost, // substitute
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

type Options struct {
	MaxDistanceRatio float64
	MaxSuggestions   int
}

func (o Options) withDefaults() Options {
	if o.MaxDistanceRatio <= 0 {
		o.MaxDistanceRatio = DefaultMaxDistanceRatio
	}
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = DefaultMaxSuggestions
	}
	return o
}

// FindSimilar returns the candidates within ceil(len(target)*ratio) edit
// distance of target, closest first, truncated to MaxSuggestions.
func FindSimilar(target string, candidates []string, opts Options) []string {
	opts = opts.withDefaults()
	maxDistance := int(math.Ceil(float64(len([]rune(target))) * opts.MaxDistanceRatio))

	type scored struct {
		value    string
		distance int
		index    int
	}
	matches := make([]scored, 0, len(candidates))
	for i, candidate := range candidates {
		d := Distance(target, candidate)
		if d <= maxDistance {
			matches = append(matches, scored{value: candidate, distance: d, index: i})
		}
	}

	// Stable order: distance first, then original candidate order.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].index < matches[j].index
	})

	if len(matches) > opts.MaxSuggestions {
		matches = matches[:opts.MaxSuggestions]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.value)
	}
	return out
}

// BestMatch returns the closest candidate within the ratio, or false.
func BestMatch(target string, candidates []string, ratio float64) (string, bool) {
	matches := FindSimilar(target, candidates, Options{MaxDistanceRatio: ratio, MaxSuggestions: 1})
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

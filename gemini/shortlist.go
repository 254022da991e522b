package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	siteindex "github.com/fredster9/site-interface"
)

// Short-list ranking keeps the completion call small and cheap: a
// numbered list of at most a few dozen items, a one-line instruction,
// and a reply parsed for bare numbers.
const (
	shortlistSystemPrompt = "Return only numbers separated by commas, no other text."
	shortlistTemperature  = 0.3
	shortlistMaxTokens    = 30
)

var numberPattern = regexp.MustCompile(`\d+`)

// Ensure ShortlistRanker implements siteindex.ShortlistRanker.
var _ siteindex.ShortlistRanker = (*ShortlistRanker)(nil)

// ShortlistRanker selects items from an enumerated short list via a
// completion call. The reply is parsed leniently: any numbers found in
// the free-text response are taken as one-based list positions.
type ShortlistRanker struct {
	completer siteindex.Completer
}

// NewShortlistRanker creates a ShortlistRanker on top of a Completer.
func NewShortlistRanker(completer siteindex.Completer) *ShortlistRanker {
	return &ShortlistRanker{completer: completer}
}

// RankShortlist returns up to n zero-based indices into items, chosen
// according to the criteria. An empty result (no parseable numbers in
// the reply) is not an error; callers fall back deterministically.
func (r *ShortlistRanker) RankShortlist(ctx context.Context, items []string, criteria string, n int) ([]int, error) {
	if len(items) == 0 || n <= 0 {
		return nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Select the top %d of %s:\n\n", n, criteria)
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	fmt.Fprintf(&sb, "\nReturn only the numbers (1-%d) of the top %d items, separated by commas.", len(items), n)

	reply, err := r.completer.Complete(ctx, shortlistSystemPrompt, sb.String(), shortlistTemperature, shortlistMaxTokens)
	if err != nil {
		return nil, err
	}

	return ParseIndices(reply, len(items), n), nil
}

// ParseIndices extracts up to n zero-based indices from a free-text
// reply containing one-based positions. Out-of-range numbers and
// duplicates are dropped.
func ParseIndices(reply string, itemCount, n int) []int {
	var indices []int
	seen := make(map[int]bool)
	for _, match := range numberPattern.FindAllString(reply, -1) {
		num, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		idx := num - 1
		if idx < 0 || idx >= itemCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
		if len(indices) == n {
			break
		}
	}
	return indices
}

package commands

import (
	"context"
	"sort"
	"strings"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// SearchResult wraps a label with a relevance score
type SearchResult struct {
	application.LabelView
	Score int
}

// SearchCommand searches one label kind with fuzzy matching
type SearchCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Query  string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(labels *application.Labels, kind domain.Kind, query string) *SearchCommand {
	return &SearchCommand{
		labels: labels,
		Kind:   kind,
		Query:  query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if err := validateKind(c.Kind); err != nil {
		return nil, err
	}

	query := domain.ParseLabelRef(c.Query)
	if len(query) < 2 {
		return nil, nil
	}

	all, err := c.labels.All(c.Kind)
	if err != nil {
		return nil, err
	}

	return FuzzySort(all, query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '/' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores labels by name and path and sorts them by relevance.
// Equal scores keep tree order.
func FuzzySort(labels []application.LabelView, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(labels))

	for _, l := range labels {
		best := max(FuzzyScore(l.Name, query), FuzzyScore(l.Path, query))
		if best > 0 {
			scored = append(scored, SearchResult{
				LabelView: l,
				Score:     best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

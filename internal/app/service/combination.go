package service

import (
	"sort"
	"strings"
	"unicode"

	"github.com/vitrina/vitrina-backend/internal/app/attribute"
	"github.com/vitrina/vitrina-backend/internal/app/model"
)

// combinationEntry is one (option, value) choice inside a combination.
type combinationEntry struct {
	Option model.ProductOption
	Value  model.ProductOptionValue
}

// generateCombinations expands the options into the Cartesian product of
// their values. Options without values contribute no dimension. The first
// option is the major sort key; the last option varies fastest. If every
// option is empty the result is a single empty combination.
//
// Iterative odometer walk, so large option counts cannot blow the stack.
func generateCombinations(options []model.ProductOption) [][]combinationEntry {
	var dims []model.ProductOption
	for _, opt := range options {
		if len(opt.Values) > 0 {
			dims = append(dims, opt)
		}
	}
	if len(dims) == 0 {
		return [][]combinationEntry{{}}
	}

	total := 1
	for _, opt := range dims {
		total *= len(opt.Values)
	}

	combinations := make([][]combinationEntry, 0, total)
	indexes := make([]int, len(dims))
	for {
		combination := make([]combinationEntry, len(dims))
		for i, opt := range dims {
			combination[i] = combinationEntry{Option: opt, Value: opt.Values[indexes[i]]}
		}
		combinations = append(combinations, combination)

		pos := len(dims) - 1
		for pos >= 0 {
			indexes[pos]++
			if indexes[pos] < len(dims[pos].Values) {
				break
			}
			indexes[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return combinations
}

// sortEntriesByPriority orders a combination's entries by descending naming
// priority, so the most important attribute (size before color) leads the
// synthesized name and SKU regardless of generation order.
func sortEntriesByPriority(entries []combinationEntry) []combinationEntry {
	sorted := make([]combinationEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return attribute.Classify(sorted[i].Option.Name).Priority >
			attribute.Classify(sorted[j].Option.Name).Priority
	})
	return sorted
}

// buildVariantName synthesizes "<product> - <v1> / <v2> / ..." with values
// ordered by naming priority. An empty combination yields the bare product
// name.
func buildVariantName(entries []combinationEntry, productName string) string {
	if len(entries) == 0 {
		return productName
	}

	values := make([]string, len(entries))
	for i, entry := range sortEntriesByPriority(entries) {
		values[i] = entry.Value.DisplayName
	}
	return productName + " - " + strings.Join(values, " / ")
}

// buildVariantSKU synthesizes "<prefix>-<suf1>-<suf2>-..." where the prefix
// is the product SKU stripped of non-alphanumeric characters ("VAR" when the
// product has none) and each suffix is the first three characters of a chosen
// value, upper-cased. An empty combination yields the product SKU verbatim,
// or "VAR-001" without one.
func buildVariantSKU(entries []combinationEntry, productSKU string) string {
	if len(entries) == 0 {
		if productSKU == "" {
			return "VAR-001"
		}
		return productSKU
	}

	prefix := stripNonAlphanumeric(productSKU)
	if prefix == "" {
		prefix = "VAR"
	}

	parts := []string{prefix}
	for _, entry := range sortEntriesByPriority(entries) {
		parts = append(parts, strings.ToUpper(firstRunes(entry.Value.Value, 3)))
	}
	return strings.Join(parts, "-")
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

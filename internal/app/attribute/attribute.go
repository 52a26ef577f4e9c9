// Package attribute classifies product option names into semantic groups
// (size, color, material, style) and defines the ordering used when variants
// are generated and displayed. The lexicon is the single source of truth for
// both grouping and naming priority.
package attribute

import (
	"sort"
	"strings"

	"github.com/vitrina/vitrina-backend/internal/app/model"
)

type Group string

const (
	GroupSize     Group = "size"
	GroupColor    Group = "color"
	GroupMaterial Group = "material"
	GroupStyle    Group = "style"
	GroupOther    Group = "other"
)

// Info is the classification of one option name.
type Info struct {
	Group    Group
	Priority int
}

// lexicon maps option display names (exact, case-sensitive, Russian and
// English) to their group and naming priority. Higher priority means the
// value appears earlier in a synthesized variant name.
var lexicon = map[string]Info{
	"Размер":    {GroupSize, 10},
	"Size":      {GroupSize, 10},
	"Размеры":   {GroupSize, 10},
	"Sizes":     {GroupSize, 10},
	"Цвет":      {GroupColor, 8},
	"Color":     {GroupColor, 8},
	"Цвета":     {GroupColor, 8},
	"Colors":    {GroupColor, 8},
	"Материал":  {GroupMaterial, 6},
	"Material":  {GroupMaterial, 6},
	"Материалы": {GroupMaterial, 6},
	"Materials": {GroupMaterial, 6},
	"Стиль":     {GroupStyle, 4},
	"Style":     {GroupStyle, 4},
	"Тип":       {GroupStyle, 4},
	"Type":      {GroupStyle, 4},
	"Модель":    {GroupStyle, 2},
	"Model":     {GroupStyle, 2},
}

// groupRank orders groups for display and generation: size first, color
// second, then material, style, and everything else.
var groupRank = map[Group]int{
	GroupSize:     1,
	GroupColor:    2,
	GroupMaterial: 3,
	GroupStyle:    4,
	GroupOther:    5,
}

// Classify returns the group and naming priority for an option name.
// Unrecognized names fall into GroupOther with priority 0.
func Classify(name string) Info {
	if info, ok := lexicon[name]; ok {
		return info
	}
	return Info{GroupOther, 0}
}

// Rank returns the display rank of a group (lower sorts first).
func Rank(g Group) int {
	if rank, ok := groupRank[g]; ok {
		return rank
	}
	return groupRank[GroupOther]
}

// SortOptions returns the options ordered by group rank, ties broken by
// case-insensitive name. The same ordering is applied before combination
// generation and when labeling grouped output, so generated variants stay
// grouped consistently.
func SortOptions(options []model.ProductOption) []model.ProductOption {
	sorted := make([]model.ProductOption, len(options))
	copy(sorted, options)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri := Rank(Classify(sorted[i].Name).Group)
		rj := Rank(Classify(sorted[j].Name).Group)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrina/vitrina-backend/internal/app/model"
)

func makeOption(id uint, name string, values ...string) model.ProductOption {
	opt := model.ProductOption{
		ID:   id,
		Name: name,
		Type: model.OptionTypeText,
	}
	for i, v := range values {
		opt.Values = append(opt.Values, model.ProductOptionValue{
			ID:          id*100 + uint(i) + 1,
			OptionID:    id,
			Value:       v,
			DisplayName: v,
			SortOrder:   i + 1,
		})
	}
	return opt
}

func TestGenerateCombinations_Cardinality(t *testing.T) {
	tests := []struct {
		name    string
		options []model.ProductOption
		want    int
	}{
		{
			name: "Two by three",
			options: []model.ProductOption{
				makeOption(1, "Размер", "S", "M"),
				makeOption(2, "Цвет", "Красный", "Синий", "Зелёный"),
			},
			want: 6,
		},
		{
			name: "Single option",
			options: []model.ProductOption{
				makeOption(1, "Размер", "S", "M", "L"),
			},
			want: 3,
		},
		{
			name: "Three dimensions",
			options: []model.ProductOption{
				makeOption(1, "Размер", "S", "M"),
				makeOption(2, "Цвет", "Красный", "Синий"),
				makeOption(3, "Материал", "Хлопок", "Лён"),
			},
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combinations := generateCombinations(tt.options)
			assert.Len(t, combinations, tt.want)
			for _, combination := range combinations {
				assert.Len(t, combination, len(tt.options))
			}
		})
	}
}

func TestGenerateCombinations_EmptyOptionSkipped(t *testing.T) {
	options := []model.ProductOption{
		makeOption(1, "Размер", "S", "M"),
		makeOption(2, "Цвет"), // no values, contributes no dimension
	}

	combinations := generateCombinations(options)
	assert.Len(t, combinations, 2)
	for _, combination := range combinations {
		assert.Len(t, combination, 1)
		assert.Equal(t, "Размер", combination[0].Option.Name)
	}
}

func TestGenerateCombinations_AllEmpty(t *testing.T) {
	options := []model.ProductOption{
		makeOption(1, "Размер"),
		makeOption(2, "Цвет"),
	}

	combinations := generateCombinations(options)
	assert.Len(t, combinations, 1)
	assert.Empty(t, combinations[0])
}

func TestGenerateCombinations_LastOptionVariesFastest(t *testing.T) {
	options := []model.ProductOption{
		makeOption(1, "Размер", "S", "M"),
		makeOption(2, "Цвет", "Красный", "Синий"),
	}

	combinations := generateCombinations(options)

	got := make([][2]string, len(combinations))
	for i, combination := range combinations {
		got[i] = [2]string{combination[0].Value.Value, combination[1].Value.Value}
	}

	assert.Equal(t, [][2]string{
		{"S", "Красный"},
		{"S", "Синий"},
		{"M", "Красный"},
		{"M", "Синий"},
	}, got)
}

func TestBuildVariantName(t *testing.T) {
	size := makeOption(1, "Размер", "M")
	color := makeOption(2, "Цвет", "Красный")

	tests := []struct {
		name    string
		entries []combinationEntry
		want    string
	}{
		{
			name: "Size leads color regardless of entry order",
			entries: []combinationEntry{
				{Option: color, Value: color.Values[0]},
				{Option: size, Value: size.Values[0]},
			},
			want: "Футболка - M / Красный",
		},
		{
			name:    "Empty combination keeps product name",
			entries: nil,
			want:    "Футболка",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildVariantName(tt.entries, "Футболка"))
		})
	}
}

func TestBuildVariantName_UsesDisplayName(t *testing.T) {
	opt := makeOption(1, "Цвет", "red")
	opt.Values[0].DisplayName = "Красный"

	entries := []combinationEntry{{Option: opt, Value: opt.Values[0]}}
	assert.Equal(t, "Футболка - Красный", buildVariantName(entries, "Футболка"))
}

func TestBuildVariantSKU(t *testing.T) {
	size := makeOption(1, "Size", "Large")
	color := makeOption(2, "Color", "Red")

	tests := []struct {
		name       string
		entries    []combinationEntry
		productSKU string
		want       string
	}{
		{
			name: "Prefix plus three-letter suffixes",
			entries: []combinationEntry{
				{Option: size, Value: size.Values[0]},
				{Option: color, Value: color.Values[0]},
			},
			productSKU: "TSHIRT",
			want:       "TSHIRT-LAR-RED",
		},
		{
			name: "Non-alphanumerics stripped from prefix",
			entries: []combinationEntry{
				{Option: size, Value: size.Values[0]},
			},
			productSKU: "T-SHIRT 01",
			want:       "TSHIRT01-LAR",
		},
		{
			name: "Missing product SKU falls back to VAR",
			entries: []combinationEntry{
				{Option: size, Value: size.Values[0]},
			},
			productSKU: "",
			want:       "VAR-LAR",
		},
		{
			name:       "Empty combination keeps product SKU",
			entries:    nil,
			productSKU: "TSHIRT",
			want:       "TSHIRT",
		},
		{
			name:       "Empty combination without product SKU",
			entries:    nil,
			productSKU: "",
			want:       "VAR-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildVariantSKU(tt.entries, tt.productSKU))
		})
	}
}

func TestBuildVariantSKU_UsesRawValueNotDisplayName(t *testing.T) {
	opt := makeOption(1, "Color", "red")
	opt.Values[0].DisplayName = "Красный"

	entries := []combinationEntry{{Option: opt, Value: opt.Values[0]}}
	assert.Equal(t, "TS-RED", buildVariantSKU(entries, "TS"))
}

func TestBuildVariantSKU_ShortValue(t *testing.T) {
	opt := makeOption(1, "Size", "M")

	entries := []combinationEntry{{Option: opt, Value: opt.Values[0]}}
	assert.Equal(t, "TS-M", buildVariantSKU(entries, "TS"))
}

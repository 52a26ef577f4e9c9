package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrina/vitrina-backend/internal/app/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		optionName   string
		wantGroup    Group
		wantPriority int
	}{
		{"Russian size", "Размер", GroupSize, 10},
		{"English size", "Size", GroupSize, 10},
		{"Russian size plural", "Размеры", GroupSize, 10},
		{"Russian color", "Цвет", GroupColor, 8},
		{"English color", "Color", GroupColor, 8},
		{"Russian material", "Материал", GroupMaterial, 6},
		{"English style", "Style", GroupStyle, 4},
		{"Russian type", "Тип", GroupStyle, 4},
		{"Russian model", "Модель", GroupStyle, 2},
		{"English model", "Model", GroupStyle, 2},
		{"Unrecognized", "Вкус", GroupOther, 0},
		{"Case sensitive lookup", "size", GroupOther, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.optionName)
			assert.Equal(t, tt.wantGroup, info.Group)
			assert.Equal(t, tt.wantPriority, info.Priority)
		})
	}
}

func TestClassify_BilingualEquivalence(t *testing.T) {
	assert.Equal(t, Classify("Size"), Classify("Размер"))
	assert.Equal(t, Classify("Color"), Classify("Цвет"))
	assert.Equal(t, Classify("Material"), Classify("Материал"))
}

func TestSortOptions_GroupOrder(t *testing.T) {
	options := []model.ProductOption{
		{Name: "Цвет"},
		{Name: "Размер"},
	}

	sorted := SortOptions(options)
	assert.Equal(t, "Размер", sorted[0].Name)
	assert.Equal(t, "Цвет", sorted[1].Name)

	// Order must not depend on input order.
	reversed := SortOptions([]model.ProductOption{
		{Name: "Размер"},
		{Name: "Цвет"},
	})
	assert.Equal(t, "Размер", reversed[0].Name)
	assert.Equal(t, "Цвет", reversed[1].Name)
}

func TestSortOptions_FullRanking(t *testing.T) {
	options := []model.ProductOption{
		{Name: "Вкус"},
		{Name: "Стиль"},
		{Name: "Материал"},
		{Name: "Цвет"},
		{Name: "Размер"},
	}

	sorted := SortOptions(options)
	names := make([]string, len(sorted))
	for i, o := range sorted {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"Размер", "Цвет", "Материал", "Стиль", "Вкус"}, names)
}

func TestSortOptions_TieBreakByName(t *testing.T) {
	options := []model.ProductOption{
		{Name: "banana"},
		{Name: "Apple"},
	}

	sorted := SortOptions(options)
	assert.Equal(t, "Apple", sorted[0].Name)
	assert.Equal(t, "banana", sorted[1].Name)
}

func TestSortOptions_DoesNotMutateInput(t *testing.T) {
	options := []model.ProductOption{
		{Name: "Цвет"},
		{Name: "Размер"},
	}

	SortOptions(options)
	assert.Equal(t, "Цвет", options[0].Name)
}

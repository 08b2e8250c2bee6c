package shopping

import (
	"slices"
	"strings"

	"github.com/mmynk/shoplist/internal/models"
)

// mergeKey identifies one accumulation bucket. The unit is part of the key so
// the same ingredient bought in two units stays on two lines.
type mergeKey struct {
	name    string
	section string
	unit    models.Unit
}

type bucket struct {
	section string
	item    Item
}

// Merge deduplicates occurrences by (name, section), ignoring case, and sums
// quantities that share a unit. Occurrences of the same ingredient in
// different units are kept as separate items. Each section's items are sorted
// by name, case-insensitively; items with equal names keep first-seen order.
func Merge(occurrences []Occurrence) Grouping {
	index := make(map[mergeKey]int, len(occurrences))
	var buckets []bucket

	for _, occ := range occurrences {
		occ = occ.withDefaults()
		key := mergeKey{name: strings.ToLower(occ.Name), section: occ.Section, unit: occ.Unit}

		if i, ok := index[key]; ok {
			buckets[i].item.Quantity = buckets[i].item.Quantity.Add(occ.Quantity)
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, bucket{
			section: occ.Section,
			item:    Item{Name: occ.Name, Quantity: occ.Quantity, Unit: occ.Unit},
		})
	}

	result := make(Grouping)
	for _, b := range buckets {
		result[b.section] = append(result[b.section], b.item)
	}
	for section := range result {
		sortItems(result[section])
	}
	return result
}

func sortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

// Flatten turns a grouping back into occurrences. Sections are visited in
// sorted order so repeated calls produce the same sequence.
func Flatten(g Grouping) []Occurrence {
	sections := make([]string, 0, len(g))
	for section := range g {
		sections = append(sections, section)
	}
	slices.Sort(sections)

	var out []Occurrence
	for _, section := range sections {
		for _, item := range g[section] {
			out = append(out, Occurrence{
				Name:     item.Name,
				Section:  section,
				Quantity: item.Quantity,
				Unit:     item.Unit,
			})
		}
	}
	return out
}

// RecipeOccurrences collects the ingredients of every recipe whose name is in
// selected, in recipe order. Names not matching any recipe are ignored.
func RecipeOccurrences(recipes []models.Recipe, selected []string) []Occurrence {
	var out []Occurrence
	for _, r := range recipes {
		if !slices.Contains(selected, r.Name) {
			continue
		}
		for _, ing := range r.Ingredients {
			out = append(out, Occurrence{
				Name:     ing.Name,
				Section:  ing.Section,
				Quantity: ing.QuantityOrDefault(),
				Unit:     ing.Unit.OrDefault(),
			})
		}
	}
	return out
}

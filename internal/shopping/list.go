package shopping

import (
	"slices"
)

// CanonicalSections is the walking order through the store. Sections not
// listed here come after these, alphabetically.
var CanonicalSections = []string{
	"Bakery",
	"Vegetables",
	"Fruits",
	"Herbs",
	"Deli",
	"Delicatessen",
	"Fish",
	"Meat",
	"Frozen",
	"Cheese",
	"Yogurt",
	"Dairy",
	"Salty Grocery",
	"World Cuisine",
	"Sweet Grocery",
	"Beverages",
	"Baby Food",
	"Hygiene & Misc",
}

// BuildList combines recipe-derived and freely chosen items into one list.
// Both groupings are merged in a single pass, so the same article coming from
// a recipe and from the catalogue ends up on one line when units agree.
func BuildList(recipeItems, freeItems Grouping) List {
	occurrences := append(Flatten(recipeItems), Flatten(freeItems)...)
	return OrderSections(Merge(occurrences), CanonicalSections)
}

// OrderSections lays a grouping out as a List: sections named in order come
// first in that order, the rest follow alphabetically. Empty sections are
// dropped.
func OrderSections(g Grouping, order []string) List {
	var list List
	seen := make(map[string]bool, len(order))
	for _, section := range order {
		if seen[section] {
			continue
		}
		seen[section] = true
		if items := g[section]; len(items) > 0 {
			list = append(list, SectionItems{Section: section, Items: items})
		}
	}

	var rest []string
	for section, items := range g {
		if !seen[section] && len(items) > 0 {
			rest = append(rest, section)
		}
	}
	slices.Sort(rest)
	for _, section := range rest {
		list = append(list, SectionItems{Section: section, Items: g[section]})
	}
	return list
}

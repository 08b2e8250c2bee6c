// Package shopping aggregates ingredient occurrences into a shopping list.
//
// The pipeline is:
//
//	occurrences := RecipeOccurrences(recipes, selected)
//	recipeItems := Merge(occurrences)
//	list := BuildList(recipeItems, freeItems)
//	list = SubtractStock(list, stock)
//
// Everything here is a pure computation over the collections passed in.
// Nothing is loaded, saved or locked.
package shopping

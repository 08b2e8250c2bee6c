// Package models defines the core domain models for Shoplist.
//
// # Models
//
//   - Recipe: a named dish with an ordered list of ingredients
//   - Ingredient: one recipe line (name, store section, quantity, unit)
//   - Section: a store department holding the articles sold there
//   - Catalogue: the ordered list of sections used to pick free items and stock
//
// Quantities are decimal.Decimal so that sums stay exact ("450", "1.5")
// without float noise when rendered.
//
// # Design Principles
//
// 1. **Caller-owned data**: the aggregation engine never loads or saves models;
// storage and services hand it explicit collections.
// 2. **Names are case-insensitive identities**: recipe names and catalogue
// articles are compared lowercased but displayed with their original spelling.
// 3. **No unit conversion**: units are labels, "g" and "kg" never reconcile.
package models

package shopping

import (
	"slices"
	"strings"

	"github.com/mmynk/shoplist/internal/models"
)

// AddArticle registers name under the section of the catalogue, creating the
// section when it does not exist. It reports whether the catalogue changed;
// false means the article was already listed (ignoring case) and the caller
// has nothing to persist.
func AddArticle(cat *models.Catalogue, name, section string) bool {
	s := cat.Find(section)
	if s == nil {
		*cat = append(*cat, models.Section{Name: section, Articles: []string{name}})
		return true
	}
	if s.HasArticle(name) {
		return false
	}
	s.Articles = append(s.Articles, name)
	slices.SortStableFunc(s.Articles, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return true
}

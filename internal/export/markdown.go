package export

import (
	"fmt"
	"strings"
)

// Markdown renders the document as Markdown and returns it with a
// date-stamped filename.
//
//	# Shopping list
//
//	_Week of 14/10/2026_
//
//	**Dishes:** Soup • Salad
//
//	## Vegetables
//
//	- Carrots (500g)
func Markdown(doc Document) (filename, content string) {
	var b strings.Builder

	b.WriteString("# Shopping list\n\n")
	fmt.Fprintf(&b, "_Week of %s_\n\n", doc.Date.Format(dayFormat))
	if len(doc.Recipes) > 0 {
		fmt.Fprintf(&b, "**Dishes:** %s\n\n", strings.Join(doc.Recipes, recipeSeparator))
	}

	for _, section := range doc.List {
		fmt.Fprintf(&b, "## %s\n\n", section.Section)
		for _, item := range section.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	filename = fmt.Sprintf("Shopping_list_%s.md", doc.Date.Format(filenameFormat))
	return filename, strings.TrimRight(b.String(), "\n") + "\n"
}

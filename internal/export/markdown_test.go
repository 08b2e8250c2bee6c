package export

import "testing"

func TestMarkdown(t *testing.T) {
	filename, content := Markdown(sampleDocument())

	if filename != "Shopping_list_2026-03-09.md" {
		t.Errorf("unexpected filename %q", filename)
	}

	want := `# Shopping list

_Week of 09/03/2026_

**Dishes:** Soup • Pancakes

## Vegetables

- Carrots (500g)
- Leek

## Dairy

- Eggs (x6)
- Milk (0.5L)
`
	if content != want {
		t.Errorf("unexpected content:\n%s\nwant:\n%s", content, want)
	}
}

func TestMarkdown_NoRecipes(t *testing.T) {
	doc := sampleDocument()
	doc.Recipes = nil
	doc.List = nil

	_, content := Markdown(doc)

	want := "# Shopping list\n\n_Week of 09/03/2026_\n"
	if content != want {
		t.Errorf("expected %q, got %q", want, content)
	}
}

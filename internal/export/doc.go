// Package export renders computed shopping lists for use outside the server:
// a Notion page with checkboxes, or a Markdown document.
package export

import (
	"time"

	"github.com/mmynk/shoplist/internal/shopping"
)

// Document is a shopping list ready to be exported.
type Document struct {
	// Date is the day the list was made; it appears in titles and filenames.
	Date time.Time

	// Recipes are the dishes the list was built from, in selection order.
	Recipes []string

	List shopping.List
}

const (
	dayFormat      = "02/01/2006"
	filenameFormat = "2006-01-02"

	// recipeSeparator joins recipe names in headers.
	recipeSeparator = " • "
)

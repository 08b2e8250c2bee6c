package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultNotionURL is the public Notion API endpoint.
	DefaultNotionURL = "https://api.notion.com"

	notionVersion = "2022-06-28"
	notionTimeout = 15 * time.Second

	// maxBlocksPerRequest is the Notion limit on children per call.
	maxBlocksPerRequest = 100
)

// ErrNotConfigured is returned when the Notion token or parent page is missing.
var ErrNotConfigured = errors.New("notion export is not configured")

// NotionExporter creates shopping list pages under a parent Notion page.
type NotionExporter struct {
	token   string
	pageID  string
	baseURL string
	client  *http.Client
}

// NewNotionExporter returns an exporter for the integration token and parent
// page. baseURL defaults to DefaultNotionURL when empty.
func NewNotionExporter(token, pageID, baseURL string) *NotionExporter {
	if baseURL == "" {
		baseURL = DefaultNotionURL
	}
	return &NotionExporter{
		token:   token,
		pageID:  pageID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: notionTimeout},
	}
}

// Configured reports whether both the token and the parent page are set.
func (e *NotionExporter) Configured() bool {
	return e != nil && e.token != "" && e.pageID != ""
}

// NotionPage is the result of a successful export.
type NotionPage struct {
	ID     string
	URL    string
	Blocks int
}

// Export creates a page for doc. The first blocks are sent with the page
// itself, the remainder is appended in batches.
func (e *NotionExporter) Export(ctx context.Context, doc Document) (*NotionPage, error) {
	if !e.Configured() {
		return nil, ErrNotConfigured
	}

	blocks := notionBlocks(doc)
	first := blocks[:min(len(blocks), maxBlocksPerRequest)]

	payload := createPageRequest{
		Parent: pageParent{PageID: e.pageID},
		Properties: pageProperties{
			Title: []richText{{Text: textContent{Content: NotionTitle(doc)}}},
		},
		Children: first,
	}

	var page pageResponse
	if err := e.do(ctx, http.MethodPost, "/v1/pages", payload, &page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	slog.Debug("Notion page created", "page_id", page.ID, "blocks", len(first))

	for start := maxBlocksPerRequest; start < len(blocks); start += maxBlocksPerRequest {
		batch := blocks[start:min(len(blocks), start+maxBlocksPerRequest)]
		path := "/v1/blocks/" + page.ID + "/children"
		if err := e.do(ctx, http.MethodPatch, path, appendChildrenRequest{Children: batch}, nil); err != nil {
			return nil, fmt.Errorf("failed to append blocks %d-%d to page %s: %w", start, start+len(batch), page.ID, err)
		}
		slog.Debug("Notion blocks appended", "page_id", page.ID, "blocks", len(batch))
	}

	return &NotionPage{ID: page.ID, URL: page.URL, Blocks: len(blocks)}, nil
}

// NotionTitle is the page title for doc.
func NotionTitle(doc Document) string {
	return "🛒 Shopping list — " + doc.Date.Format(dayFormat)
}

// notionBlocks lays doc out as Notion blocks: an optional dishes line and
// divider, then a heading per section followed by one checkbox per item.
// The result is never nil; Notion rejects "children": null.
func notionBlocks(doc Document) []block {
	blocks := []block{}
	if len(doc.Recipes) > 0 {
		blocks = append(blocks,
			block{
				Object: "block",
				Type:   "paragraph",
				Paragraph: &richBlock{RichText: []richText{{
					Type:        "text",
					Text:        textContent{Content: "🍽️ " + strings.Join(doc.Recipes, recipeSeparator)},
					Annotations: &annotations{Italic: true, Color: "gray"},
				}}},
			},
			block{Object: "block", Type: "divider", Divider: &struct{}{}},
		)
	}

	for _, section := range doc.List {
		blocks = append(blocks, block{
			Object:   "block",
			Type:     "heading_2",
			Heading2: &richBlock{RichText: plainText(section.Section)},
		})
		for _, item := range section.Items {
			blocks = append(blocks, block{
				Object: "block",
				Type:   "to_do",
				ToDo:   &toDo{RichText: plainText(item.String())},
			})
		}
	}
	return blocks
}

func (e *NotionExporter) do(ctx context.Context, method, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError extracts Notion's error message, falling back to the raw body.
func apiError(status int, raw []byte) error {
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return fmt.Errorf("notion returned %d: %s", status, body.Message)
	}
	return fmt.Errorf("notion returned %d: %s", status, strings.TrimSpace(string(raw)))
}

func plainText(s string) []richText {
	return []richText{{Type: "text", Text: textContent{Content: s}}}
}

// Wire types for the subset of the Notion API used here.

type createPageRequest struct {
	Parent     pageParent     `json:"parent"`
	Properties pageProperties `json:"properties"`
	Children   []block        `json:"children"`
}

type appendChildrenRequest struct {
	Children []block `json:"children"`
}

type pageParent struct {
	PageID string `json:"page_id"`
}

type pageProperties struct {
	Title []richText `json:"title"`
}

type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type block struct {
	Object    string     `json:"object"`
	Type      string     `json:"type"`
	Paragraph *richBlock `json:"paragraph,omitempty"`
	Heading2  *richBlock `json:"heading_2,omitempty"`
	ToDo      *toDo      `json:"to_do,omitempty"`
	Divider   *struct{}  `json:"divider,omitempty"`
}

type richBlock struct {
	RichText []richText `json:"rich_text"`
}

type toDo struct {
	RichText []richText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

type richText struct {
	Type        string       `json:"type,omitempty"`
	Text        textContent  `json:"text"`
	Annotations *annotations `json:"annotations,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

type annotations struct {
	Italic bool   `json:"italic"`
	Color  string `json:"color"`
}

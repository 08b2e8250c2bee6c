package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/export"
	"github.com/mmynk/shoplist/internal/metrics"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/shopping"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
)

var _ api.ShoppingServiceHandler = (*ShoppingService)(nil)

// ShoppingService implements the Connect ShoppingService
type ShoppingService struct {
	store   storage.Store
	notion  *export.NotionExporter
	metrics *metrics.Metrics

	// now stamps exported documents.
	now func() time.Time
}

// NewShoppingService creates a new ShoppingService. notion may be
// unconfigured, in which case ExportNotion fails with FailedPrecondition.
func NewShoppingService(store storage.Store, notion *export.NotionExporter, m *metrics.Metrics) *ShoppingService {
	return &ShoppingService{store: store, notion: notion, metrics: m, now: time.Now}
}

// BuildList computes the shopping list for the selected recipes and items,
// minus what is already in stock.
func (s *ShoppingService) BuildList(ctx context.Context, req *connect.Request[api.ListRequest]) (*connect.Response[api.BuildListResponse], error) {
	doc, err := s.compute(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.BuildListResponse{
		Sections:   listToAPI(doc.List),
		Recipes:    doc.Recipes,
		TotalItems: doc.List.Len(),
	}), nil
}

// ExportNotion computes the list and publishes it as a Notion page.
func (s *ShoppingService) ExportNotion(ctx context.Context, req *connect.Request[api.ListRequest]) (*connect.Response[api.ExportNotionResponse], error) {
	doc, err := s.compute(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	page, err := s.notion.Export(ctx, doc)
	s.metrics.ObserveExport("notion", err)
	switch {
	case errors.Is(err, export.ErrNotConfigured):
		slog.Warn("ExportNotion: Notion is not configured")
		return nil, toConnectError(err)
	case err != nil:
		slog.Error("ExportNotion failed", "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	slog.Info("Notion page created", "url", page.URL, "blocks", page.Blocks)
	return connect.NewResponse(&api.ExportNotionResponse{Url: page.URL, Blocks: page.Blocks}), nil
}

// ExportDocument computes the list and renders it as a Markdown document.
func (s *ShoppingService) ExportDocument(ctx context.Context, req *connect.Request[api.ListRequest]) (*connect.Response[api.ExportDocumentResponse], error) {
	doc, err := s.compute(ctx, req.Msg)
	if err != nil {
		return nil, err
	}

	filename, content := export.Markdown(doc)
	s.metrics.ObserveExport("document", nil)

	return connect.NewResponse(&api.ExportDocumentResponse{Filename: filename, Content: content}), nil
}

// compute turns a request into an export-ready document. Recipe names that
// match no stored recipe are ignored.
func (s *ShoppingService) compute(ctx context.Context, msg *api.ListRequest) (export.Document, error) {
	slog.Info("Shopping list requested",
		"recipes", msg.Recipes,
		"items_count", len(msg.Items),
		"stock_count", len(msg.Stock),
	)

	free, err := freeItemsFromAPI(msg.Items)
	if err != nil {
		return export.Document{}, invalidArgument(err)
	}
	stock, err := stockFromAPI(msg.Stock)
	if err != nil {
		return export.Document{}, invalidArgument(err)
	}

	var recipes []models.Recipe
	if len(msg.Recipes) > 0 {
		recipes, err = s.store.ListRecipes(ctx)
		if err != nil {
			slog.Error("Shopping list: failed to load recipes", "error", err)
			return export.Document{}, toConnectError(err)
		}
	}

	fromRecipes := shopping.Merge(shopping.RecipeOccurrences(recipes, msg.Recipes))
	list := shopping.SubtractStock(shopping.BuildList(fromRecipes, free), stock)
	s.metrics.ObserveList(list.Len())

	doc := export.Document{
		Date:    s.now(),
		Recipes: matchedRecipes(recipes, msg.Recipes),
		List:    list,
	}
	slog.Debug("Shopping list computed", "sections", len(list), "items", list.Len())
	return doc, nil
}

// matchedRecipes returns the selected names that exist, in selection order,
// without duplicates.
func matchedRecipes(recipes []models.Recipe, selected []string) []string {
	matched := []string{}
	for _, name := range selected {
		if slices.Contains(matched, name) {
			continue
		}
		if slices.ContainsFunc(recipes, func(r models.Recipe) bool { return r.Name == name }) {
			matched = append(matched, name)
		}
	}
	return matched
}

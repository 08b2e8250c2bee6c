package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/shopping"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
)

var _ api.CatalogueServiceHandler = (*CatalogueService)(nil)

// CatalogueService implements the Connect CatalogueService
type CatalogueService struct {
	store storage.Store
}

// NewCatalogueService creates a new CatalogueService with the given storage backend.
func NewCatalogueService(store storage.Store) *CatalogueService {
	return &CatalogueService{store: store}
}

// GetCatalogue returns the sections in store order.
func (s *CatalogueService) GetCatalogue(ctx context.Context, req *connect.Request[api.GetCatalogueRequest]) (*connect.Response[api.GetCatalogueResponse], error) {
	cat, err := s.store.GetCatalogue(ctx)
	if err != nil {
		slog.Error("GetCatalogue failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetCatalogueResponse{Sections: catalogueToAPI(cat)}), nil
}

// AddArticle registers an article under a section, creating the section if
// needed. The catalogue is only written when the article is new.
func (s *CatalogueService) AddArticle(ctx context.Context, req *connect.Request[api.AddArticleRequest]) (*connect.Response[api.AddArticleResponse], error) {
	slog.Info("AddArticle request received", "section", req.Msg.Section, "name", req.Msg.Name)

	name, section, err := requireArticle(req.Msg.Name, req.Msg.Section)
	if err != nil {
		return nil, invalidArgument(err)
	}

	cat, err := s.store.GetCatalogue(ctx)
	if err != nil {
		slog.Error("AddArticle: failed to load catalogue", "error", err)
		return nil, toConnectError(err)
	}

	if !shopping.AddArticle(&cat, name, section) {
		slog.Debug("Article already listed", "section", section, "name", name)
		return connect.NewResponse(&api.AddArticleResponse{Inserted: false}), nil
	}

	if err := s.store.SaveCatalogue(ctx, cat); err != nil {
		slog.Error("AddArticle failed", "section", section, "name", name, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Article added", "section", section, "name", name)
	return connect.NewResponse(&api.AddArticleResponse{Inserted: true}), nil
}

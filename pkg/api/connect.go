package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	RecipeServiceName    = "shoplist.v1.RecipeService"
	CatalogueServiceName = "shoplist.v1.CatalogueService"
	ShoppingServiceName  = "shoplist.v1.ShoppingService"
)

// Fully-qualified procedure paths.
const (
	RecipeServiceListRecipesProcedure      = "/shoplist.v1.RecipeService/ListRecipes"
	RecipeServiceGetRecipeProcedure        = "/shoplist.v1.RecipeService/GetRecipe"
	RecipeServiceSaveRecipeProcedure       = "/shoplist.v1.RecipeService/SaveRecipe"
	RecipeServiceDeleteRecipeProcedure     = "/shoplist.v1.RecipeService/DeleteRecipe"
	CatalogueServiceGetCatalogueProcedure  = "/shoplist.v1.CatalogueService/GetCatalogue"
	CatalogueServiceAddArticleProcedure    = "/shoplist.v1.CatalogueService/AddArticle"
	ShoppingServiceBuildListProcedure      = "/shoplist.v1.ShoppingService/BuildList"
	ShoppingServiceExportNotionProcedure   = "/shoplist.v1.ShoppingService/ExportNotion"
	ShoppingServiceExportDocumentProcedure = "/shoplist.v1.ShoppingService/ExportDocument"
)

// RecipeServiceHandler is the server side of the RecipeService,
// which manages the household's recipes.
type RecipeServiceHandler interface {
	ListRecipes(context.Context, *connect.Request[ListRecipesRequest]) (*connect.Response[ListRecipesResponse], error)
	GetRecipe(context.Context, *connect.Request[GetRecipeRequest]) (*connect.Response[GetRecipeResponse], error)
	SaveRecipe(context.Context, *connect.Request[SaveRecipeRequest]) (*connect.Response[SaveRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[DeleteRecipeRequest]) (*connect.Response[DeleteRecipeResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	listRecipes := connect.NewUnaryHandler(RecipeServiceListRecipesProcedure, svc.ListRecipes, opts...)
	getRecipe := connect.NewUnaryHandler(RecipeServiceGetRecipeProcedure, svc.GetRecipe, opts...)
	saveRecipe := connect.NewUnaryHandler(RecipeServiceSaveRecipeProcedure, svc.SaveRecipe, opts...)
	deleteRecipe := connect.NewUnaryHandler(RecipeServiceDeleteRecipeProcedure, svc.DeleteRecipe, opts...)
	return "/" + RecipeServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecipeServiceListRecipesProcedure:
			listRecipes.ServeHTTP(w, r)
		case RecipeServiceGetRecipeProcedure:
			getRecipe.ServeHTTP(w, r)
		case RecipeServiceSaveRecipeProcedure:
			saveRecipe.ServeHTTP(w, r)
		case RecipeServiceDeleteRecipeProcedure:
			deleteRecipe.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RecipeServiceClient is a client for the RecipeService.
type RecipeServiceClient interface {
	ListRecipes(context.Context, *connect.Request[ListRecipesRequest]) (*connect.Response[ListRecipesResponse], error)
	GetRecipe(context.Context, *connect.Request[GetRecipeRequest]) (*connect.Response[GetRecipeResponse], error)
	SaveRecipe(context.Context, *connect.Request[SaveRecipeRequest]) (*connect.Response[SaveRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[DeleteRecipeRequest]) (*connect.Response[DeleteRecipeResponse], error)
}

// NewRecipeServiceClient constructs a client for the RecipeService at baseURL
// (e.g., http://localhost:8080).
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecipeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &recipeServiceClient{
		listRecipes:  connect.NewClient[ListRecipesRequest, ListRecipesResponse](httpClient, baseURL+RecipeServiceListRecipesProcedure, opts...),
		getRecipe:    connect.NewClient[GetRecipeRequest, GetRecipeResponse](httpClient, baseURL+RecipeServiceGetRecipeProcedure, opts...),
		saveRecipe:   connect.NewClient[SaveRecipeRequest, SaveRecipeResponse](httpClient, baseURL+RecipeServiceSaveRecipeProcedure, opts...),
		deleteRecipe: connect.NewClient[DeleteRecipeRequest, DeleteRecipeResponse](httpClient, baseURL+RecipeServiceDeleteRecipeProcedure, opts...),
	}
}

type recipeServiceClient struct {
	listRecipes  *connect.Client[ListRecipesRequest, ListRecipesResponse]
	getRecipe    *connect.Client[GetRecipeRequest, GetRecipeResponse]
	saveRecipe   *connect.Client[SaveRecipeRequest, SaveRecipeResponse]
	deleteRecipe *connect.Client[DeleteRecipeRequest, DeleteRecipeResponse]
}

func (c *recipeServiceClient) ListRecipes(ctx context.Context, req *connect.Request[ListRecipesRequest]) (*connect.Response[ListRecipesResponse], error) {
	return c.listRecipes.CallUnary(ctx, req)
}

func (c *recipeServiceClient) GetRecipe(ctx context.Context, req *connect.Request[GetRecipeRequest]) (*connect.Response[GetRecipeResponse], error) {
	return c.getRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) SaveRecipe(ctx context.Context, req *connect.Request[SaveRecipeRequest]) (*connect.Response[SaveRecipeResponse], error) {
	return c.saveRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) DeleteRecipe(ctx context.Context, req *connect.Request[DeleteRecipeRequest]) (*connect.Response[DeleteRecipeResponse], error) {
	return c.deleteRecipe.CallUnary(ctx, req)
}

// CatalogueServiceHandler is the server side of the CatalogueService,
// which exposes the store sections and their articles.
type CatalogueServiceHandler interface {
	GetCatalogue(context.Context, *connect.Request[GetCatalogueRequest]) (*connect.Response[GetCatalogueResponse], error)
	AddArticle(context.Context, *connect.Request[AddArticleRequest]) (*connect.Response[AddArticleResponse], error)
}

// NewCatalogueServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewCatalogueServiceHandler(svc CatalogueServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	getCatalogue := connect.NewUnaryHandler(CatalogueServiceGetCatalogueProcedure, svc.GetCatalogue, opts...)
	addArticle := connect.NewUnaryHandler(CatalogueServiceAddArticleProcedure, svc.AddArticle, opts...)
	return "/" + CatalogueServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogueServiceGetCatalogueProcedure:
			getCatalogue.ServeHTTP(w, r)
		case CatalogueServiceAddArticleProcedure:
			addArticle.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// CatalogueServiceClient is a client for the CatalogueService.
type CatalogueServiceClient interface {
	GetCatalogue(context.Context, *connect.Request[GetCatalogueRequest]) (*connect.Response[GetCatalogueResponse], error)
	AddArticle(context.Context, *connect.Request[AddArticleRequest]) (*connect.Response[AddArticleResponse], error)
}

// NewCatalogueServiceClient constructs a client for the CatalogueService at baseURL
// (e.g., http://localhost:8080).
func NewCatalogueServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogueServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &catalogueServiceClient{
		getCatalogue: connect.NewClient[GetCatalogueRequest, GetCatalogueResponse](httpClient, baseURL+CatalogueServiceGetCatalogueProcedure, opts...),
		addArticle:   connect.NewClient[AddArticleRequest, AddArticleResponse](httpClient, baseURL+CatalogueServiceAddArticleProcedure, opts...),
	}
}

type catalogueServiceClient struct {
	getCatalogue *connect.Client[GetCatalogueRequest, GetCatalogueResponse]
	addArticle   *connect.Client[AddArticleRequest, AddArticleResponse]
}

func (c *catalogueServiceClient) GetCatalogue(ctx context.Context, req *connect.Request[GetCatalogueRequest]) (*connect.Response[GetCatalogueResponse], error) {
	return c.getCatalogue.CallUnary(ctx, req)
}

func (c *catalogueServiceClient) AddArticle(ctx context.Context, req *connect.Request[AddArticleRequest]) (*connect.Response[AddArticleResponse], error) {
	return c.addArticle.CallUnary(ctx, req)
}

// ShoppingServiceHandler is the server side of the ShoppingService,
// which computes and exports shopping lists.
type ShoppingServiceHandler interface {
	BuildList(context.Context, *connect.Request[ListRequest]) (*connect.Response[BuildListResponse], error)
	ExportNotion(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportNotionResponse], error)
	ExportDocument(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportDocumentResponse], error)
}

// NewShoppingServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewShoppingServiceHandler(svc ShoppingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	buildList := connect.NewUnaryHandler(ShoppingServiceBuildListProcedure, svc.BuildList, opts...)
	exportNotion := connect.NewUnaryHandler(ShoppingServiceExportNotionProcedure, svc.ExportNotion, opts...)
	exportDocument := connect.NewUnaryHandler(ShoppingServiceExportDocumentProcedure, svc.ExportDocument, opts...)
	return "/" + ShoppingServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ShoppingServiceBuildListProcedure:
			buildList.ServeHTTP(w, r)
		case ShoppingServiceExportNotionProcedure:
			exportNotion.ServeHTTP(w, r)
		case ShoppingServiceExportDocumentProcedure:
			exportDocument.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ShoppingServiceClient is a client for the ShoppingService.
type ShoppingServiceClient interface {
	BuildList(context.Context, *connect.Request[ListRequest]) (*connect.Response[BuildListResponse], error)
	ExportNotion(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportNotionResponse], error)
	ExportDocument(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportDocumentResponse], error)
}

// NewShoppingServiceClient constructs a client for the ShoppingService at baseURL
// (e.g., http://localhost:8080).
func NewShoppingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShoppingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &shoppingServiceClient{
		buildList:      connect.NewClient[ListRequest, BuildListResponse](httpClient, baseURL+ShoppingServiceBuildListProcedure, opts...),
		exportNotion:   connect.NewClient[ListRequest, ExportNotionResponse](httpClient, baseURL+ShoppingServiceExportNotionProcedure, opts...),
		exportDocument: connect.NewClient[ListRequest, ExportDocumentResponse](httpClient, baseURL+ShoppingServiceExportDocumentProcedure, opts...),
	}
}

type shoppingServiceClient struct {
	buildList      *connect.Client[ListRequest, BuildListResponse]
	exportNotion   *connect.Client[ListRequest, ExportNotionResponse]
	exportDocument *connect.Client[ListRequest, ExportDocumentResponse]
}

func (c *shoppingServiceClient) BuildList(ctx context.Context, req *connect.Request[ListRequest]) (*connect.Response[BuildListResponse], error) {
	return c.buildList.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) ExportNotion(ctx context.Context, req *connect.Request[ListRequest]) (*connect.Response[ExportNotionResponse], error) {
	return c.exportNotion.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) ExportDocument(ctx context.Context, req *connect.Request[ListRequest]) (*connect.Response[ExportDocumentResponse], error) {
	return c.exportDocument.CallUnary(ctx, req)
}

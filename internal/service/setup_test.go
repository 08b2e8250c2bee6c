package service

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/export"
	"github.com/mmynk/shoplist/internal/metrics"
	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
	"github.com/mmynk/shoplist/pkg/api"
)

var testNow = time.Date(2026, time.March, 9, 18, 30, 0, 0, time.UTC)

type testEnv struct {
	recipes   api.RecipeServiceClient
	catalogue api.CatalogueServiceClient
	shopping  api.ShoppingServiceClient
	notion    *fakeNotion
}

// fakeNotion stands in for the Notion API and counts page creations.
type fakeNotion struct {
	mu     sync.Mutex
	pages  int
	failed bool
}

func (f *fakeNotion) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`))
		return
	}
	if r.Method == http.MethodPost {
		f.pages++
	}
	w.Write([]byte(`{"object":"page","id":"p1","url":"https://www.notion.so/p1"}`))
}

// setupTestServer creates a test server backed by a temporary SQLite database.
// An empty notionToken leaves the Notion export unconfigured.
func setupTestServer(t *testing.T, notionToken string) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	fake := &fakeNotion{}
	notionServer := httptest.NewServer(fake)
	t.Cleanup(notionServer.Close)

	m := metrics.New()
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m))

	shoppingSvc := NewShoppingService(store, export.NewNotionExporter(notionToken, "parent", notionServer.URL), m)
	shoppingSvc.now = func() time.Time { return testNow }

	mux := http.NewServeMux()
	mux.Handle(api.NewRecipeServiceHandler(NewRecipeService(store), interceptors))
	mux.Handle(api.NewCatalogueServiceHandler(NewCatalogueService(store), interceptors))
	mux.Handle(api.NewShoppingServiceHandler(shoppingSvc, interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		recipes:   api.NewRecipeServiceClient(http.DefaultClient, server.URL),
		catalogue: api.NewCatalogueServiceClient(http.DefaultClient, server.URL),
		shopping:  api.NewShoppingServiceClient(http.DefaultClient, server.URL),
		notion:    fake,
	}
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ing(name, section, quantity, unit string) api.Ingredient {
	return api.Ingredient{Name: name, Section: section, Quantity: qty(quantity), Unit: unit}
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	connectErr, ok := err.(*connect.Error)
	if !ok {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

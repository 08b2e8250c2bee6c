package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
)

type echoShopping struct{}

func (echoShopping) BuildList(_ context.Context, req *connect.Request[ListRequest]) (*connect.Response[BuildListResponse], error) {
	var items []ListItem
	for _, it := range req.Msg.Items {
		items = append(items, ListItem{Name: it.Name, Quantity: it.Quantity, Unit: "piece", Display: it.Name})
	}
	return connect.NewResponse(&BuildListResponse{
		Sections:   []ListSection{{Name: "Bakery", Items: items}},
		Recipes:    req.Msg.Recipes,
		TotalItems: len(items),
	}), nil
}

func (echoShopping) ExportNotion(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportNotionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (echoShopping) ExportDocument(context.Context, *connect.Request[ListRequest]) (*connect.Response[ExportDocumentResponse], error) {
	return connect.NewResponse(&ExportDocumentResponse{Filename: "list.md"}), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(NewShoppingServiceHandler(echoShopping{}))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientRoundTrip(t *testing.T) {
	server := newTestServer(t)
	client := NewShoppingServiceClient(http.DefaultClient, server.URL+"/")

	resp, err := client.BuildList(context.Background(), connect.NewRequest(&ListRequest{
		Recipes: []string{"Soup"},
		Items:   []FreeItem{{Section: "Bakery", Name: "Bread", Quantity: decimal.RequireFromString("2.5")}},
	}))
	if err != nil {
		t.Fatalf("BuildList failed: %v", err)
	}
	if resp.Msg.TotalItems != 1 || resp.Msg.Recipes[0] != "Soup" {
		t.Errorf("unexpected response %+v", resp.Msg)
	}
	if got := resp.Msg.Sections[0].Items[0].Quantity; !got.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("quantity lost precision: %s", got)
	}

	_, err = client.ExportNotion(context.Background(), connect.NewRequest(&ListRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Errorf("expected CodeUnimplemented, got %v", err)
	}
}

func TestPlainHTTP(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+ShoppingServiceBuildListProcedure, "application/json",
		strings.NewReader(`{"items":[{"section":"Bakery","name":"Bread","quantity":"1"}]}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	for _, want := range []string{`"total_items":1`, `"name":"Bakery"`, `"display":"Bread"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
}

func TestPlainHTTP_EmptyBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+ShoppingServiceExportDocumentProcedure, "application/json", strings.NewReader(""))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for an empty body, got %d", resp.StatusCode)
	}
}

func TestUnknownProcedure(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/shoplist.v1.ShoppingService/Nope", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

package adlibraryclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/internal/config"
)

func TestAdLibraryClient_ListDatasetItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/datasets/ds-123/items", r.URL.Path)
		assert.Equal(t, "token-abc", r.URL.Query().Get("token"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		// Página menor que o tamanho máximo encerra a paginação
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"ad_archive_id": "ad-1", "page_id": "1001", "page_name": "Acme Realty"},
			{"ad_archive_id": "ad-2", "page_id": "1002", "page_name": "Trendy Outlet"}
		]`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		AdLibrary: config.AdLibrary{
			URL:       server.URL,
			Token:     "token-abc",
			DatasetID: "ds-123",
		},
	})

	items, err := client.ListDatasetItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "ad-1", items[0].AdArchiveID)
	assert.Equal(t, "1001", items[0].PageID)
}

func TestAdLibraryClient_ListDatasetItems_ErroHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		AdLibrary: config.AdLibrary{
			URL:       server.URL,
			Token:     "token-invalido",
			DatasetID: "ds-123",
		},
	})

	items, err := client.ListDatasetItems(context.Background())
	assert.Nil(t, items)
	assert.Error(t, err)
}

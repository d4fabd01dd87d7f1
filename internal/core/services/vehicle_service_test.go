package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleRegistryServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Sultan", "category": "Sedans"},
			{"name": "Sultan RS", "category": "Sports"},
			{"name": "Banshee", "category": "Sports"}
		]`))
	}))
}

func TestSearchVehicles_FiltersCaseInsensitively(t *testing.T) {
	var hits atomic.Int64
	server := vehicleRegistryServer(t, &hits)
	defer server.Close()

	svc := services.NewVehicleCatalogService(server.URL, server.URL, time.Minute,
		services.WithHTTPClient(server.Client()))

	matches, err := svc.SearchVehicles(context.Background(), "sultan")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Sultan", matches[0].Name)

	all, err := svc.SearchVehicles(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchVehicles_CachesUpstream(t *testing.T) {
	var hits atomic.Int64
	server := vehicleRegistryServer(t, &hits)
	defer server.Close()

	svc := services.NewVehicleCatalogService(server.URL, server.URL, time.Minute,
		services.WithHTTPClient(server.Client()))

	for i := 0; i < 5; i++ {
		_, err := svc.SearchVehicles(context.Background(), "banshee")
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), hits.Load(), "repeated searches must hit the upstream once")
}

func TestSearchVehicles_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := services.NewVehicleCatalogService(server.URL, server.URL, time.Minute,
		services.WithHTTPClient(server.Client()))

	_, err := svc.SearchVehicles(context.Background(), "sultan")
	assert.Error(t, err)
}

func TestListCharacters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"characterName": "Ray Ratchet", "cid": "CID-42"}]`))
	}))
	defer server.Close()

	svc := services.NewVehicleCatalogService(server.URL, server.URL, time.Minute,
		services.WithHTTPClient(server.Client()))

	characters, err := svc.ListCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Ray Ratchet", characters[0].CharacterName)
	assert.Equal(t, "CID-42", characters[0].CID)
}

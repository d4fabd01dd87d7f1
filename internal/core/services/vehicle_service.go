package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	vehicleCacheKey   = "vehicles"
	characterCacheKey = "characters"
)

type vehicleCatalogService struct {
	BaseService
	vehicleAPIURL   string
	characterAPIURL string
	client          *http.Client
	vehicleCache    *expirable.LRU[string, []domain.VehicleInfo]
	characterCache  *expirable.LRU[string, []domain.CharacterInfo]
}

// VehicleCatalogOption is a functional option for configuring the vehicle catalog service
type VehicleCatalogOption func(*vehicleCatalogService)

// WithHTTPClient overrides the HTTP client used to reach the upstream APIs.
func WithHTTPClient(client *http.Client) VehicleCatalogOption {
	return func(s *vehicleCatalogService) {
		s.client = client
	}
}

// NewVehicleCatalogService creates the proxy in front of the external
// vehicle and character registries. Responses are cached for cacheTTL so a
// dashboard refresh storm does not hammer the upstreams.
func NewVehicleCatalogService(vehicleAPIURL, characterAPIURL string, cacheTTL time.Duration, options ...VehicleCatalogOption) portssvc.VehicleCatalogSvc {
	s := &vehicleCatalogService{
		vehicleAPIURL:   vehicleAPIURL,
		characterAPIURL: characterAPIURL,
		client:          &http.Client{Timeout: 10 * time.Second},
		vehicleCache:    expirable.NewLRU[string, []domain.VehicleInfo](1, nil, cacheTTL),
		characterCache:  expirable.NewLRU[string, []domain.CharacterInfo](1, nil, cacheTTL),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.VehicleCatalogSvc = (*vehicleCatalogService)(nil)

func fetchJSON[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var out T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return out, fmt.Errorf("failed to build upstream request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return out, fmt.Errorf("failed to reach upstream %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("upstream %s returned %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode upstream response from %s: %w", url, err)
	}
	return out, nil
}

func (s *vehicleCatalogService) loadVehicles(ctx context.Context) ([]domain.VehicleInfo, error) {
	if cached, ok := s.vehicleCache.Get(vehicleCacheKey); ok {
		return cached, nil
	}
	vehicles, err := fetchJSON[[]domain.VehicleInfo](ctx, s.client, s.vehicleAPIURL)
	if err != nil {
		s.LogError(ctx, err, "failed to load vehicle registry")
		return nil, err
	}
	s.vehicleCache.Add(vehicleCacheKey, vehicles)
	s.LogDebug(ctx, "vehicle registry refreshed", slog.Int("count", len(vehicles)))
	return vehicles, nil
}

// SearchVehicles returns vehicles whose name contains the query,
// case-insensitively. An empty query returns the full catalog.
func (s *vehicleCatalogService) SearchVehicles(ctx context.Context, query string) ([]domain.VehicleInfo, error) {
	vehicles, err := s.loadVehicles(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return vehicles, nil
	}

	needle := strings.ToLower(query)
	matches := make([]domain.VehicleInfo, 0)
	for _, v := range vehicles {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

// ListCharacters returns the external character registry.
func (s *vehicleCatalogService) ListCharacters(ctx context.Context) ([]domain.CharacterInfo, error) {
	if cached, ok := s.characterCache.Get(characterCacheKey); ok {
		return cached, nil
	}
	characters, err := fetchJSON[[]domain.CharacterInfo](ctx, s.client, s.characterAPIURL)
	if err != nil {
		s.LogError(ctx, err, "failed to load character registry")
		return nil, err
	}
	s.characterCache.Add(characterCacheKey, characters)
	return characters, nil
}

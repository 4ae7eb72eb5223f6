package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/safeglow/backend/internal/domain"
	"github.com/safeglow/backend/internal/infrastructure/cse"
	"golang.org/x/sync/errgroup"
)

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	CacheEnabled       bool
	CacheTTL           time.Duration
	Workers            int
	EnableDebugLogging bool
}

// RecommendationService searches for skincare products and annotates each
// result with a safety verdict for the requested skin type
type RecommendationService struct {
	cache        domain.CacheRepository
	searchClient domain.SearchClient
	cacheEnabled bool
	cacheTTL     time.Duration
	workers      int
	debug        bool
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	cache domain.CacheRepository,
	searchClient domain.SearchClient,
	config RecommendationServiceConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 6 * time.Hour
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &RecommendationService{
		cache:        cache,
		searchClient: searchClient,
		cacheEnabled: config.CacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
		workers:      workers,
		debug:        config.EnableDebugLogging,
	}
}

// Recommend fetches products for a skin type and classifies each one.
// Flow: validate -> search (optionally cached) -> classify in parallel -> return in search order
func (s *RecommendationService) Recommend(ctx context.Context, skinType string) (*domain.RecommendResponse, error) {
	if skinType == "" {
		return nil, domain.ErrSkinTypeRequired
	}

	if !s.searchClient.Configured() {
		return nil, domain.ErrSearchNotConfigured
	}

	query := BuildSearchQuery(skinType)

	items, err := s.fetchItems(ctx, query)
	if err != nil {
		return nil, err
	}

	products, err := s.classifyItems(ctx, domain.SkinType(skinType), items)
	if err != nil {
		return nil, err
	}

	return &domain.RecommendResponse{Products: products}, nil
}

// BuildSearchQuery builds the provider query for a skin type
func BuildSearchQuery(skinType string) string {
	return fmt.Sprintf("%s skin best skincare products", skinType)
}

// fetchItems returns provider items for a query, consulting the cache first when enabled
func (s *RecommendationService) fetchItems(ctx context.Context, query string) ([]domain.SearchItem, error) {
	cacheKey := generateCacheKey(query)

	if s.cacheEnabled {
		if items, err := s.getFromCache(ctx, cacheKey); err == nil {
			if s.debug {
				log.Printf("[Recommend] Cache hit for %q (%d items)", query, len(items))
			}
			return items, nil
		}
	}

	resp, err := s.searchClient.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}

	var items []domain.SearchItem
	if resp != nil {
		items = resp.Items
	}

	if s.cacheEnabled {
		if err := s.setInCache(ctx, cacheKey, items); err != nil {
			log.Printf("[Recommend] Failed to cache search results: %v", err)
		}
	}

	return items, nil
}

// classifyItems runs the classifier for every item with bounded concurrency.
// Each goroutine writes only its own slot, so output order matches input order.
func (s *RecommendationService) classifyItems(
	ctx context.Context,
	skinType domain.SkinType,
	items []domain.SearchItem,
) ([]domain.Product, error) {
	products := make([]domain.Product, len(items))
	if len(items) == 0 {
		return products, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(s.workers, len(items)))

	for i := range items {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			item := &items[i]
			signals := ExtractSignals(cse.ClassifierText(item))
			verdict, rule := Evaluate(skinType, signals)

			if s.debug {
				log.Printf("[Recommend] item %d %q -> %s (rule=%q signals=%+v)", i, item.Title, verdict, rule, signals)
			}

			products[i] = cse.MapToProduct(item, verdict)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

func workerCount(limit, itemCount int) int {
	return max(min(limit, itemCount), 1)
}

// generateCacheKey creates a normalized cache key for a search query.
// Format: "search:{normalized_query}"
func generateCacheKey(query string) string {
	return "search:" + normalizeForCacheKey(query)
}

// normalizeForCacheKey lowercases, strips special characters and collapses whitespace
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache reads search items stored as a JSON string
func (s *RecommendationService) getFromCache(ctx context.Context, key string) ([]domain.SearchItem, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	encoded, ok := value.(string)
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	var items []domain.SearchItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return items, nil
}

// setInCache stores search items as a JSON string
func (s *RecommendationService) setInCache(ctx context.Context, key string, items []domain.SearchItem) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, string(encoded), s.cacheTTL)
}

// Package poster looks up movie poster images from public title pages.
package poster

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
)

// Cache stores resolved poster URLs. *cache.Service satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Resolver struct {
	httpClient  *http.Client
	baseURL     string
	concurrency int
	cache       Cache
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewResolver(baseURL string, logger *zap.Logger) *Resolver {
	if baseURL == "" {
		baseURL = constants.PosterConfig.BaseURL
	}
	return &Resolver{
		httpClient: &http.Client{
			Timeout: constants.PosterConfig.Timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		concurrency: constants.PosterConfig.Concurrency,
		logger:      logger,
	}
}

// WithCache makes Lookup consult c before fetching and store hits for ttl.
func (r *Resolver) WithCache(c Cache, ttl time.Duration) *Resolver {
	r.cache = c
	r.cacheTTL = ttl
	return r
}

func cacheKey(imdbID string) string {
	return constants.CacheConfig.PosterKeyPrefix + imdbID
}

// Lookup returns the og:image URL of the title page for imdbID. Cache
// errors are logged and fall through to the live fetch.
func (r *Resolver) Lookup(ctx context.Context, imdbID string) (string, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return "", fmt.Errorf("empty imdb id")
	}

	if r.cache != nil {
		var cached string
		found, err := r.cache.Get(ctx, cacheKey(imdbID), &cached)
		if err != nil {
			r.logger.Debug("Poster cache read failed", zap.String("imdb_id", imdbID), zap.Error(err))
		} else if found && cached != "" {
			return cached, nil
		}
	}

	image, err := r.fetch(ctx, imdbID)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey(imdbID), image, r.cacheTTL); err != nil {
			r.logger.Debug("Poster cache write failed", zap.String("imdb_id", imdbID), zap.Error(err))
		}
	}
	return image, nil
}

func (r *Resolver) fetch(ctx context.Context, imdbID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/title/%s/", r.baseURL, imdbID), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constants.PosterConfig.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	image, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content")
	image = strings.TrimSpace(image)
	if !ok || image == "" {
		return "", fmt.Errorf("no og:image for %s", imdbID)
	}
	return image, nil
}

// Enrich fills PosterURL on items that have an IMDb id and no poster yet.
// Lookup failures are logged and leave the item unchanged.
func (r *Resolver) Enrich(ctx context.Context, items []domain.MovieItem) {
	p := pool.New().WithMaxGoroutines(r.concurrency)

	for idx := range items {
		item := &items[idx]
		if item.IMDbID == "" || item.PosterURL != "" {
			continue
		}
		p.Go(func() {
			url, err := r.Lookup(ctx, item.IMDbID)
			if err != nil {
				r.logger.Debug("Poster lookup failed",
					zap.String("imdb_id", item.IMDbID),
					zap.Error(err),
				)
				return
			}
			item.PosterURL = url
		})
	}

	p.Wait()
}

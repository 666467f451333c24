// Package catalog looks movies up in OMDb to enrich registered picks.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/diegoclair/movie-club-bot/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.omdbapi.com/"

type Config struct {
	APIKey        string
	BaseURL       string
	CacheTTL      time.Duration
	RatePerSecond float64
	Timeout       time.Duration
}

// OMDb is a contract.Catalog backed by the OMDb API. Lookups are cached,
// deduplicated while in flight and rate limited.
type OMDb struct {
	apiKey  string
	client  *baseClient
	cache   *ristretto.Cache[string, *entity.MovieDetails]
	ttl     time.Duration
	flight  singleflight.Group
	limiter *rate.Limiter
	metrics *metrics.Metrics
}

func NewOMDb(cfg Config, m *metrics.Metrics) (*OMDb, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *entity.MovieDetails]{
		NumCounters: 10_000,
		MaxCost:     1_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}

	return &OMDb{
		apiKey:  cfg.APIKey,
		client:  newBaseClient(cfg.BaseURL, cfg.Timeout),
		cache:   cache,
		ttl:     cfg.CacheTTL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		metrics: m,
	}, nil
}

func (o *OMDb) Close() {
	o.cache.Close()
}

func cacheKey(title string, year *int) string {
	key := strings.ToLower(strings.TrimSpace(title))
	if year != nil {
		key += "|" + strconv.Itoa(*year)
	}
	return key
}

// Search returns the best match for title, or nil when OMDb has none
func (o *OMDb) Search(ctx context.Context, title string, year *int) (*entity.MovieDetails, error) {
	key := cacheKey(title, year)
	if details, ok := o.cache.Get(key); ok {
		o.metrics.CatalogLookup("hit")
		return details, nil
	}

	v, err, _ := o.flight.Do(key, func() (interface{}, error) {
		details, err := o.fetch(ctx, title, year)
		if err != nil {
			return nil, err
		}
		o.cache.SetWithTTL(key, details, 1, o.ttl)
		o.cache.Wait()
		return details, nil
	})
	if err != nil {
		o.metrics.CatalogLookup("error")
		return nil, err
	}

	details := v.(*entity.MovieDetails)
	if details == nil {
		o.metrics.CatalogLookup("miss")
		return nil, nil
	}
	o.metrics.CatalogLookup("fetched")
	return details, nil
}

type omdbMovie struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbID     string `json:"imdbID"`
	ImdbRating string `json:"imdbRating"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	Runtime    string `json:"Runtime"`
}

func (o *OMDb) fetch(ctx context.Context, title string, year *int) (*entity.MovieDetails, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("catalog rate limit: %w", err)
	}

	query := url.Values{
		"apikey": {o.apiKey},
		"t":      {strings.TrimSpace(title)},
		"type":   {"movie"},
		"plot":   {"short"},
	}
	if year != nil {
		query.Set("y", strconv.Itoa(*year))
	}

	body, err := o.client.get(ctx, query)
	if err != nil {
		return nil, err
	}

	var movie omdbMovie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if movie.Response != "True" {
		log.Debug().Str("title", title).Str("reason", movie.Error).Msg("movie not found in catalog")
		return nil, nil
	}

	return movie.details(), nil
}

func (m omdbMovie) details() *entity.MovieDetails {
	d := &entity.MovieDetails{
		Title:     m.Title,
		ImdbID:    m.ImdbID,
		Genres:    splitList(m.Genre),
		Directors: splitList(m.Director),
		Cast:      splitList(m.Actors),
		Synopsis:  known(m.Plot),
		PosterURL: known(m.Poster),
		Runtime:   known(m.Runtime),
	}
	// "1999" or a series range like "2008–2013"
	if len(m.Year) >= 4 {
		d.Year, _ = strconv.Atoi(m.Year[:4])
	}
	d.Rating, _ = strconv.ParseFloat(m.ImdbRating, 64)
	return d
}

// known maps OMDb's "N/A" placeholder to empty
func known(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

func splitList(s string) []string {
	s = known(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

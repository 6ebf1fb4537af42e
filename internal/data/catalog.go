package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviezone/internal/biz"
	"moviezone/internal/conf"

	"github.com/avast/retry-go/v4"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	defaultCatalogURL = "https://www.omdbapi.com"
	defaultCacheTTL   = 15 * time.Minute
)

type catalogClient struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	cacheTTL   time.Duration
	rdb        *redis.Client
	log        *log.Helper
}

// NewCatalogClient creates a new OMDb catalog client. Details lookups are
// cached in Redis when it is available.
func NewCatalogClient(c *conf.Catalog, d *Data, logger log.Logger) biz.CatalogClient {
	if c == nil {
		c = &conf.Catalog{}
	}
	baseURL := strings.TrimRight(c.Url, "/")
	if baseURL == "" {
		baseURL = defaultCatalogURL
	}
	ttl := c.CacheTtl.AsDuration()
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	maxRetries := int(c.MaxRetries)
	if maxRetries < 0 {
		maxRetries = 0
	}

	var rdb *redis.Client
	if d != nil {
		rdb = d.rdb
	}

	return &catalogClient{
		client: &http.Client{
			Timeout: c.Timeout.AsDuration(),
		},
		baseURL:    baseURL,
		apiKey:     c.ApiKey,
		maxRetries: maxRetries,
		cacheTTL:   ttl,
		rdb:        rdb,
		log:        log.NewHelper(logger),
	}
}

type searchResponse struct {
	Search       []biz.Movie `json:"Search"`
	TotalResults string      `json:"totalResults"`
	Response     string      `json:"Response"`
	Error        string      `json:"Error"`
}

type detailsResponse struct {
	biz.Movie
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func (c *catalogClient) SearchMovies(ctx context.Context, query string, page int) ([]biz.Movie, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	var response searchResponse
	if err := c.get(ctx, params, &response); err != nil {
		return nil, err
	}

	if response.Response != "True" {
		if isNoMatch(response.Error) {
			return []biz.Movie{}, nil
		}
		return nil, fmt.Errorf("catalog error: %s", response.Error)
	}

	if response.Search == nil {
		return []biz.Movie{}, nil
	}
	return response.Search, nil
}

func (c *catalogClient) GetMovieDetails(ctx context.Context, id string) (*biz.Movie, error) {
	cacheKey := fmt.Sprintf("movie:%s", id)

	// Try cache first if Redis is available
	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var movie biz.Movie
			if err := json.Unmarshal([]byte(cached), &movie); err == nil {
				c.log.Debugf("cache hit for movie: %s", id)
				return &movie, nil
			}
		}
	}

	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var response detailsResponse
	if err := c.get(ctx, params, &response); err != nil {
		return nil, err
	}

	if response.Response != "True" {
		if isCatalogFault(response.Error) {
			return nil, fmt.Errorf("catalog error: %s", response.Error)
		}
		return nil, fmt.Errorf("%w: %s", biz.ErrMovieNotFound, id)
	}

	movie := response.Movie

	// Cache result if Redis is available
	if c.rdb != nil {
		if data, err := json.Marshal(movie); err == nil {
			c.rdb.Set(ctx, cacheKey, data, c.cacheTTL)
		}
	}

	return &movie, nil
}

func (c *catalogClient) get(ctx context.Context, params url.Values, out interface{}) error {
	return retry.Do(
		func() error {
			return c.doRequest(ctx, params, out)
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)+1),
		retry.Delay(100*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Infof("retrying catalog request, attempt %d/%d: %v", n+1, c.maxRetries, err)
		}),
	)
}

func (c *catalogClient) doRequest(ctx context.Context, params url.Values, out interface{}) error {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Client errors will not go away on retry
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return retry.Unrecoverable(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// isNoMatch reports catalog errors that mean "nothing to show" for a search.
func isNoMatch(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "too many results")
}

// isCatalogFault reports errors caused by the service rather than the lookup.
func isCatalogFault(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "api key") || strings.Contains(msg, "limit reached")
}

package gazetteer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pvollmer/origo/internal/cache"
	"github.com/pvollmer/origo/internal/model"
	"github.com/pvollmer/origo/internal/worker"
)

// maxBodyBytes caps a single API response.
const maxBodyBytes = 1 << 20

// Client backfills missing gazetteer coordinates from the Pleiades place
// API. Requests are rate limited, checked against the host's robots policy,
// and cached across runs.
type Client struct {
	cfg     model.PleiadesConfig
	http    *http.Client
	limiter *worker.Limiter
	robots  *robotsGate
	store   cache.Cache
	verbose bool
}

// NewClient creates a backfill client. store may be nil to disable caching.
func NewClient(cfg model.PleiadesConfig, store cache.Cache, verbose bool) *Client {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &http.Transport{Proxy: proxyFunc(cfg)},
	}
	return &Client{
		cfg:     cfg,
		http:    httpClient,
		limiter: worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		robots:  newRobotsGate(cfg.BaseURL, cfg.UserAgent, httpClient),
		store:   store,
		verbose: verbose,
	}
}

// proxyFunc honors explicit proxy settings and falls back to the
// environment.
func proxyFunc(cfg model.PleiadesConfig) func(*http.Request) (*url.URL, error) {
	if cfg.HTTPProxy == "" && cfg.HTTPSProxy == "" {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		raw := cfg.HTTPProxy
		if req.URL.Scheme == "https" && cfg.HTTPSProxy != "" {
			raw = cfg.HTTPSProxy
		}
		if raw == "" {
			return nil, nil
		}
		return url.Parse(raw)
	}
}

// Backfill fetches coordinates for every entry that lacks them. A failure
// on one entry is reported to stderr and does not stop the rest; the
// returned count is the number of entries fixed.
func (c *Client) Backfill(ctx context.Context, entries []model.GazetteerEntry) int {
	fixed := 0
	for i := range entries {
		if entries[i].Coords != nil {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		coords, err := c.fetchCoords(ctx, entries[i].PlaceID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: backfill %s: %v\n", entries[i].PlaceID, err)
			continue
		}
		if coords != nil {
			entries[i].Coords = coords
			fixed++
		}
	}
	return fixed
}

// fetchCoords retrieves the place JSON for one pid. The pid is the
// path-like place id from the names export.
func (c *Client) fetchCoords(ctx context.Context, pid string) (*model.Coordinates, error) {
	fullURL := c.cfg.BaseURL + pid + "/json"

	body, found := c.cacheGet(fullURL)
	if !found {
		allowed, delay := c.robots.allowed(ctx, pid+"/json")
		if !allowed {
			return nil, fmt.Errorf("disallowed by robots policy")
		}
		if err := c.limiter.Wait(ctx, fullURL); err != nil {
			return nil, err
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
		var err error
		body, err = c.get(ctx, fullURL)
		if err != nil {
			return nil, err
		}
		c.cacheSet(fullURL, body)
	}
	return parsePoint(body)
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (c *Client) cacheGet(fullURL string) ([]byte, bool) {
	if c.store == nil {
		return nil, false
	}
	return c.store.Get(cache.Key(fullURL))
}

func (c *Client) cacheSet(fullURL string, body []byte) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(cache.Key(fullURL), body, 0); err != nil && c.verbose {
		fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
	}
}

// placeDocument is the subset of the Pleiades place JSON we read. The
// representative point is [longitude, latitude]; when absent, the first
// point-typed feature geometry stands in.
type placeDocument struct {
	ReprPoint []float64 `json:"reprPoint"`
	Features  []struct {
		Geometry *struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// parsePoint extracts coordinates from a place document. A well-formed
// document without a usable point yields (nil, nil).
func parsePoint(body []byte) (*model.Coordinates, error) {
	var doc placeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode place document: %w", err)
	}
	if len(doc.ReprPoint) >= 2 {
		return &model.Coordinates{Lat: doc.ReprPoint[1], Long: doc.ReprPoint[0]}, nil
	}
	if len(doc.Features) > 0 {
		geom := doc.Features[0].Geometry
		if geom != nil && geom.Type == "Point" && len(geom.Coordinates) >= 2 {
			return &model.Coordinates{Lat: geom.Coordinates[1], Long: geom.Coordinates[0]}, nil
		}
	}
	return nil, nil
}

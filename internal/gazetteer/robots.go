package gazetteer

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsGate answers whether the API host permits a path for our agent.
// The policy file is fetched once per run; a fetch failure allows by
// default.
type robotsGate struct {
	baseURL   string
	userAgent string
	client    *http.Client

	once sync.Once
	data *robotstxt.RobotsData
}

func newRobotsGate(baseURL, userAgent string, client *http.Client) *robotsGate {
	return &robotsGate{baseURL: baseURL, userAgent: userAgent, client: client}
}

// allowed reports whether path may be fetched and any crawl delay the
// policy requests.
func (g *robotsGate) allowed(ctx context.Context, path string) (bool, time.Duration) {
	g.once.Do(func() { g.load(ctx) })
	if g.data == nil {
		return true, 0
	}
	delay := time.Duration(0)
	if group := g.data.FindGroup(g.userAgent); group != nil {
		delay = group.CrawlDelay
	}
	return g.data.TestAgent(path, g.userAgent), delay
}

func (g *robotsGate) load(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/robots.txt", nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return
	}
	g.data = data
}

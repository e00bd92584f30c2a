package espn

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/domain/news"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
	"github.com/tidwall/gjson"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultSiteBaseURL    = "https://site.api.espn.com/apis/site/v2/sports"
	DefaultLeadersBaseURL = "https://site.api.espn.com/apis/site/v3/sports"
	defaultTimeout        = 10 * time.Second
	defaultMaxBodyBytes   = 8 << 20
	defaultUserAgent      = "sports-dashboard/1.0"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	SiteBaseURL    string
	LeadersBaseURL string
	Timeout        time.Duration
	MaxBodyBytes   int64
	UserAgent      string
	Logger         *logging.Logger
}

// Client reads the public ESPN site API. It issues exactly one request per
// Fetch call and never retries.
type Client struct {
	httpClient     *http.Client
	siteBaseURL    string
	leadersBaseURL string
	maxBodyBytes   int64
	userAgent      string
	logger         *logging.Logger
}

var _ usecase.SportDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	siteBase, err := normalizeBaseURL(cfg.SiteBaseURL, DefaultSiteBaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "site base url")
	}
	leadersBase, err := normalizeBaseURL(cfg.LeadersBaseURL, DefaultLeadersBaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "leaders base url")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient:     httpClient,
		siteBaseURL:    siteBase,
		leadersBaseURL: leadersBase,
		maxBodyBytes:   maxBody,
		userAgent:      userAgent,
		logger:         logger.Named("espn"),
	}, nil
}

// FeedURL returns the endpoint for a feed of one league.
func (c *Client) FeedURL(feed usecase.Feed, lg league.League) string {
	sportPath := strings.Trim(lg.SportPath, "/")
	if feed == usecase.FeedLeaders {
		return c.leadersBaseURL + "/" + sportPath + "/leaders"
	}
	return c.siteBaseURL + "/" + sportPath + "/" + feed.String()
}

// Fetch performs one GET for (feed, league) and returns the raw JSON body.
// Failures are logged here and returned as *usecase.FetchError.
func (c *Client) Fetch(ctx context.Context, feed usecase.Feed, lg league.League) ([]byte, error) {
	fullURL := c.FeedURL(feed, lg)
	start := time.Now()

	raw, err := c.executeRequest(ctx, feed, fullURL)
	if err != nil {
		var fe *usecase.FetchError
		if crerr.As(err, &fe) {
			c.logger.WarnContext(ctx, "espn request failed",
				"feed", feed.String(),
				"league", lg.ID,
				"url", fullURL,
				"kind", string(fe.Kind),
				"status", fe.StatusCode,
				"error", fe.Err,
			)
		}
		return nil, err
	}

	c.logger.DebugContext(ctx, "espn request done",
		"feed", feed.String(),
		"league", lg.ID,
		"bytes", len(raw),
		"duration", time.Since(start),
	)
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, feed usecase.Feed, fullURL string) ([]byte, error) {
	fail := func(kind usecase.FetchErrorKind, status int, cause error) error {
		return &usecase.FetchError{Kind: kind, Feed: feed.String(), URL: fullURL, StatusCode: status, Err: cause}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fail(usecase.FetchUnreachable, 0, crerr.Wrap(err, "build request"))
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(usecase.FetchUnreachable, 0, crerr.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(http.MaxBytesReader(nil, resp.Body, c.maxBodyBytes)); err != nil {
		var tooLarge *http.MaxBytesError
		if crerr.As(err, &tooLarge) {
			return nil, fail(usecase.FetchMalformedBody, resp.StatusCode, crerr.Newf("body exceeds %d bytes", c.maxBodyBytes))
		}
		return nil, fail(usecase.FetchUnreachable, resp.StatusCode, crerr.Wrap(err, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(usecase.FetchBadStatus, resp.StatusCode, crerr.Newf("body=%s", abbreviateBody(buf.B)))
	}

	body := bytes.TrimSpace(buf.B)
	if looksLikeHTML(body) {
		return nil, fail(usecase.FetchMalformedBody, resp.StatusCode, crerr.New("received an HTML page instead of JSON"))
	}
	if !gjson.ValidBytes(body) {
		return nil, fail(usecase.FetchMalformedBody, resp.StatusCode, crerr.Newf("invalid JSON body=%s", abbreviateBody(body)))
	}

	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// FetchGames reads and parses the league scoreboard.
func (c *Client) FetchGames(ctx context.Context, pass *usecase.RenderPass, lg league.League) (game.Board, error) {
	raw, err := c.payload(ctx, pass, usecase.FeedScoreboard, lg)
	if err != nil {
		return game.Board{}, err
	}
	return ParseScoreboard(raw, lg.ID, c.logger)
}

func (c *Client) FetchNews(ctx context.Context, pass *usecase.RenderPass, lg league.League) ([]news.Article, error) {
	raw, err := c.payload(ctx, pass, usecase.FeedNews, lg)
	if err != nil {
		return nil, err
	}
	articles, err := ExtractArticles(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "news %s", lg.ID)
	}
	return articles, nil
}

// FetchLeaders reads one category. Categories of the same league share one
// memoized payload within a render pass.
func (c *Client) FetchLeaders(ctx context.Context, pass *usecase.RenderPass, lg league.League, category league.StatCategory) ([]leaderboard.Entry, error) {
	raw, err := c.payload(ctx, pass, leadersFeed(lg), lg)
	if err != nil {
		return nil, err
	}
	return ExtractLeaders(raw, lg, category)
}

func (c *Client) FetchSeasonLabel(ctx context.Context, pass *usecase.RenderPass, lg league.League) (string, error) {
	raw, err := c.payload(ctx, pass, leadersFeed(lg), lg)
	if err != nil {
		return "", err
	}
	label, ok := SeasonLabel(raw, lg)
	if !ok {
		return "", crerr.Wrapf(usecase.ErrStructuralMismatch, "season label %s: not present", lg.ID)
	}
	return label, nil
}

func (c *Client) payload(ctx context.Context, pass *usecase.RenderPass, feed usecase.Feed, lg league.League) ([]byte, error) {
	return pass.Payload(ctx, feed, lg.ID, func(ctx context.Context) ([]byte, error) {
		return c.Fetch(ctx, feed, lg)
	})
}

func leadersFeed(lg league.League) usecase.Feed {
	if lg.LeadersSource == league.LeadersSourceStatistics {
		return usecase.FeedStatistics
	}
	return usecase.FeedLeaders
}

func normalizeBaseURL(raw, fallback string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		candidate = fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

// looksLikeHTML catches proxy and CDN error pages served with a 200 status.
func looksLikeHTML(body []byte) bool {
	return len(body) > 0 && body[0] == '<'
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config identifies the content store. It is built once at startup
// and shared read-only across requests.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string // e.g. "v2024-01-01"
	UseCDN     bool
	Token      string // optional, for private datasets
}

// Params are named query variables bound into a catalog query.
type Params map[string]any

// Querier runs a catalog query and decodes its result. Satisfied by
// *Client; tests substitute fakes.
type Querier interface {
	Query(ctx context.Context, q Query, params Params, dest any) error
}

// Client is the configured handle to the content store. It performs
// no retries and no caching; callers own both.
type Client struct {
	http *resty.Client
	cfg  Config
}

func NewClient(cfg Config) *Client {
	host := fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	if cfg.UseCDN {
		host = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
	}

	http := resty.New().
		SetBaseURL(host).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		http.SetAuthToken(cfg.Token)
	}

	return &Client{http: http, cfg: cfg}
}

// queryEnvelope is the content store's response wrapper.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	Ms     float64         `json:"ms"`
}

// Query executes a catalog query against the dataset and decodes the
// result into dest. Params are JSON-encoded and bound as $-prefixed
// query variables. A missing single document decodes dest from JSON
// null, leaving it zero-valued; callers decide what absence means.
func (c *Client) Query(ctx context.Context, q Query, params Params, dest any) error {
	if err := q.bindable(params); err != nil {
		return err
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", q.GROQ)

	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode param %q for query %s: %w", name, q.Name, err)
		}
		req.SetQueryParam("$"+name, string(encoded))
	}

	resp, err := req.Get(fmt.Sprintf("/%s/data/query/%s", c.cfg.APIVersion, c.cfg.Dataset))
	if err != nil {
		return fmt.Errorf("query %s: %w", q.Name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("query %s: unexpected status %d: %s", q.Name, resp.StatusCode(), resp.String())
	}

	var env queryEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("query %s: decode envelope: %w", q.Name, err)
	}
	if dest == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, dest); err != nil {
		return fmt.Errorf("query %s: decode result: %w", q.Name, err)
	}
	return nil
}

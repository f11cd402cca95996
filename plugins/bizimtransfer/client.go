package bizimtransfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/google/go-querystring/query"
	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/tools"
)

const (
	DefaultBaseURL  = "http://test-api.bizimtransfer.com"
	DefaultUsername = "test"
	DefaultPassword = "test"
)

// PlacesProvider resolves free-text locations to places and places to coordinates
type PlacesProvider interface {
	SearchPlaces(ctx context.Context, query, language string) ([]PlaceCandidate, error)
	GetPlaceDetails(ctx context.Context, placeID, language string) (*PlaceDetails, error)
}

// StatusError is returned when the upstream answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.Endpoint, e.Status)
}

// Options configures a Client. Zero values fall back to the test endpoint and credentials.
type Options struct {
	BaseURL  string
	Username string
	Password string
	// Timeout in seconds; 0 means no client-side timeout
	Timeout int
	// Places overrides the provider used by the place tools; nil uses the booking API itself
	Places PlacesProvider
}

// Client is the Bizim Transfer API client.
// It holds a single HTTP client that is safe for concurrent use.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
	Places     PlacesProvider

	SearchTransfersTool  *SearchTransfersTool
	MakeReservationTool  *MakeReservationTool
	ListReservationsTool *ListReservationsTool
	SearchPlacesTool     *SearchPlacesTool
	PlaceDetailsTool     *PlaceDetailsTool
}

// NewClient creates a new Bizim Transfer client and registers its tools
// when gk and registry are both non-nil.
func NewClient(opts Options, gk *genkit.Genkit, registry *tools.Registry) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if opts.Timeout < 0 {
		return nil, fmt.Errorf("timeout cannot be negative")
	}

	username, password := opts.Username, opts.Password
	if username == "" && password == "" {
		username, password = DefaultUsername, DefaultPassword
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	c := &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout:   time.Duration(opts.Timeout) * time.Second,
			Transport: newLoggingTransport(transport),
		},
	}
	c.Places = opts.Places
	if c.Places == nil {
		c.Places = c
	}

	c.initTools(gk, registry)

	return c, nil
}

// initTools registers all Bizim Transfer tools
func (c *Client) initTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	c.SearchTransfersTool = NewSearchTransfersTool(c, gk, registry)
	c.MakeReservationTool = NewMakeReservationTool(c, gk, registry)
	c.ListReservationsTool = NewListReservationsTool(c, gk, registry)
	c.SearchPlacesTool = NewSearchPlacesTool(c.Places, gk, registry)
	c.PlaceDetailsTool = NewPlaceDetailsTool(c.Places, gk, registry)
}

// Close releases idle connections. Call once at shutdown.
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

// doRequest performs an authenticated request and decodes the JSON response into out.
// params, when non-nil, is encoded as the query string; body, when non-nil, as the JSON body.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params, body, out interface{}) error {
	target := c.BaseURL + endpoint
	if params != nil {
		v, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("failed to encode query for %s: %w", endpoint, err)
		}
		target += "?" + v.Encode()
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.SetBasicAuth(c.Username, c.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "Bizim Transfer request %s %s failed: %v", method, endpoint, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

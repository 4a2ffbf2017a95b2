package shipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound marks a lookup whose resource does not exist upstream.
var ErrNotFound = errors.New("resource not found")

// defaultTimeout bounds every upstream call; the API has no server-side
// timeout of its own.
const defaultTimeout = 30 * time.Second

// Conf configures the data API client.
type Conf struct {
	// Host is the API base URL, e.g. "http://localhost:8000".
	Host string `yaml:"host"`
	// Timeout bounds each request; zero selects the default.
	Timeout time.Duration `yaml:"timeout"`
}

// Client calls the back-office data API.
type Client struct {
	*http.Client
	Conf Conf
	Log  *zap.Logger
}

// NewClient creates a client for the given API. A nil logger disables
// logging.
func NewClient(conf Conf, log *zap.Logger) *Client {
	if conf.Timeout <= 0 {
		conf.Timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		Client: &http.Client{Timeout: conf.Timeout},
		Conf:   conf,
		Log:    log,
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Conf.Host+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.Log.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP status code %d", endpoint, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Shipment fetches one shipment with its linked ports and containers.
func (c *Client) Shipment(ctx context.Context, id int) (*Shipment, error) {
	var s Shipment
	if err := c.getJSON(ctx, fmt.Sprintf("/shipment/%d", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AddressBooks fetches the full address-book listing.
func (c *Client) AddressBooks(ctx context.Context) ([]AddressBook, error) {
	var abs []AddressBook
	if err := c.getJSON(ctx, "/addressbook", &abs); err != nil {
		return nil, err
	}
	return abs, nil
}

// Products fetches the product reference listing.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var ps []Product
	if err := c.getJSON(ctx, "/products", &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// FetchAll issues the three lookups concurrently and fails as a whole if
// any of them fails: document generation is all-or-nothing at the data
// fetch boundary.
func (c *Client) FetchAll(ctx context.Context, shipmentID int) (*Bundle, error) {
	var b Bundle
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := c.Shipment(ctx, shipmentID)
		if err != nil {
			return err
		}
		b.Shipment = s
		return nil
	})
	g.Go(func() error {
		abs, err := c.AddressBooks(ctx)
		if err != nil {
			return err
		}
		b.AddressBooks = abs
		return nil
	})
	g.Go(func() error {
		ps, err := c.Products(ctx)
		if err != nil {
			return err
		}
		b.Products = ps
		return nil
	})
	if err := g.Wait(); err != nil {
		c.Log.Error("upstream fetch failed",
			zap.Int("shipmentId", shipmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch shipment data: %w", err)
	}
	return &b, nil
}

package kmb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultBaseURL is the public etabus open-data host operated by the HK government
const DefaultBaseURL = "https://data.etabus.gov.hk"

const (
	stopEndpoint      = "v1/transport/kmb/stop"
	routeEndpoint     = "v1/transport/kmb/route"
	routeStopEndpoint = "v1/transport/kmb/route-stop"
	routeETAEndpoint  = "v1/transport/kmb/route-eta"
)

const userAgent = "kmbeta"

type Client struct {
	BaseURL string

	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Stops downloads the full bulk stop listing
func (c *Client) Stops(ctx context.Context) ([]Stop, error) {
	var response stopListResponse
	if err := c.get(ctx, stopEndpoint, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// Routes downloads the full bulk route listing
func (c *Client) Routes(ctx context.Context) ([]Route, error) {
	var response routeListResponse
	if err := c.get(ctx, routeEndpoint, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// RouteStops downloads the ordered stop sequence for a single route variant.
// The direction path segment uses the long form ("inbound"/"outbound")
func (c *Client) RouteStops(ctx context.Context, route string, direction string, serviceType int) ([]RouteStop, error) {
	var response routeStopListResponse
	path := fmt.Sprintf("%s/%s/%s/%d", routeStopEndpoint, route, direction, serviceType)
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// RouteETA downloads the live arrival feed for a route & service type across all directions
func (c *Client) RouteETA(ctx context.Context, route string, serviceType int) (*ETAFeed, error) {
	var response routeETAResponse
	path := fmt.Sprintf("%s/%s/%d", routeETAEndpoint, route, serviceType)
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	return &ETAFeed{
		GeneratedTimestamp: response.GeneratedTimestamp,
		Entries:            response.Data,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	requestURL := fmt.Sprintf("%s/%s", c.BaseURL, path)

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("Request failed for %s with status %d", requestURL, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("Request failed for %s with status %d", requestURL, resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return backoff.Permanent(errors.New(fmt.Sprintf("Failed to decode response from %s: %s", requestURL, err)))
		}

		return nil
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = 200 * time.Millisecond

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(retryBackoff, 3), ctx))
}

// Package connector implements the fetch orchestration for remote API
// connectors: request URI construction, the fallback cache decision flow and
// the JSON write path.
package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/fetchkit/connector/pkg/cache"
	"github.com/fetchkit/connector/pkg/client"
	"github.com/fetchkit/connector/pkg/config"
	"github.com/fetchkit/connector/pkg/logging"
)

// ErrUnknownAction is returned when an action name is not present in the
// configured action map. This is a configuration error and surfaces to the
// caller instead of being absorbed like operational failures.
var ErrUnknownAction = errors.New("unknown action")

// Connector calls a remote HTTP API action-by-action. When fallback caching
// is enabled, a populated cache entry is always served instead of a live
// request.
type Connector struct {
	settings config.Settings
	client   *client.Client
	fallback *cache.Fallback
	logger   zerolog.Logger
}

// New creates a connector for the given settings. The fallback cache may be
// nil only when fallback caching is disabled.
func New(settings config.Settings, fallback *cache.Fallback) (*Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid connector settings: %w", err)
	}

	if settings.UseFallbackCache && fallback == nil {
		return nil, fmt.Errorf("fallback cache is required when fallback caching is enabled")
	}

	logger := logging.NewLogger("connector").With().
		Str("connector", settings.Name).Logger()

	httpClient := client.New(client.Config{
		Timeout:  settings.Timeout(),
		Username: settings.Username,
		Password: settings.Password,
	}, logger)

	return &Connector{
		settings: settings,
		client:   httpClient,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// BuildRequestURI composes the target URI for an action.
//
// The action's path suffix is appended to the base URL path by plain
// concatenation; duplicate slashes are not normalized. The query string is
// the merge of the default parameters and the additional parameters, with
// additional parameters overriding same-named defaults.
func (c *Connector) BuildRequestURI(action string, additional map[string]string) (*url.URL, error) {
	suffix, ok := c.settings.Actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	u, err := url.Parse(c.settings.APIURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	u.Path += suffix

	query := url.Values{}
	for name, value := range c.settings.Parameters {
		query.Set(name, value)
	}
	for name, value := range additional {
		query.Set(name, value)
	}
	u.RawQuery = query.Encode()

	return u, nil
}

// CacheKey derives a cache key scoped to this connector. Intended for object
// cache keys; FetchData derives its fallback cache keys the same way from the
// request URI.
func (c *Connector) CacheKey(identifier string) string {
	return cache.Key(c.settings.Name, identifier)
}

// FetchData fetches the response body for an action.
//
// When fallback caching is enabled and an entry exists for the request URI,
// the entry is returned without a live call, regardless of its age. Otherwise
// a single GET is attempted; its body is returned and, with caching enabled,
// written back to the fallback cache (a write failure is logged, not fatal).
//
// ok=false with a nil error means no data could be obtained; this is an
// expected operational outcome, not an error. A non-nil error indicates a
// configuration problem such as an unknown action.
func (c *Connector) FetchData(ctx context.Context, action string, additional map[string]string) (string, bool, error) {
	uri, err := c.BuildRequestURI(action, additional)
	if err != nil {
		return "", false, err
	}

	useCache := c.settings.UseFallbackCache
	key := cache.Key(c.settings.Name, uri.String())

	if useCache {
		body, err := c.fallback.Get(ctx, key)
		if err == nil {
			c.logger.Info().Str("action", action).Str("cache_key", key).
				Msg("Serving response from fallback cache")
			return body, true, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			c.logger.Warn().Err(err).Str("cache_key", key).Msg("Fallback cache read failed")
		}
	}

	resp, err := c.client.Get(ctx, uri.String())
	if err != nil {
		// Already logged and counted by the adapter.
		return "", false, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("action", action).Msg("Failed to read response body")
		return "", false, nil
	}

	if useCache {
		if err := c.fallback.Set(ctx, key, string(body)); err != nil {
			c.logger.Error().Err(err).Str("cache_key", key).Msg("Fallback cache write failed")
		} else {
			c.logger.Info().Str("action", action).Str("cache_key", key).
				Msg("Fallback cache updated")
		}
	}

	return string(body), true, nil
}

// PostJSONData posts a JSON payload to an action and reports success.
// No caching is involved. A non-nil error indicates a configuration problem.
func (c *Connector) PostJSONData(ctx context.Context, action string, additional map[string]string, data any) (bool, error) {
	uri, err := c.BuildRequestURI(action, additional)
	if err != nil {
		return false, err
	}

	return c.client.PostJSON(ctx, uri.String(), data), nil
}

// Name returns the connector name.
func (c *Connector) Name() string {
	return c.settings.Name
}

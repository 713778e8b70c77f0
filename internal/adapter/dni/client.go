// Package dni looks up Peruvian national-id holders on apis.net.pe.
package dni

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"gestorpro/internal/config"
	"gestorpro/internal/usecase/interfaces"
)

type Client struct {
	http    *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

var _ interfaces.INationalIDLookup = (*Client)(nil)

func NewClient(cfg config.DNIConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken.Value(),
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

type lookupResponse struct {
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	Message         string `json:"message"`
}

// FullName returns "nombres apellidoPaterno apellidoMaterno". The dni is
// expected to be validated by the caller.
func (c *Client) FullName(ctx context.Context, dni string) (string, error) {
	if c.token == "" {
		return "", interfaces.ErrNationalIDNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dni?numero="+url.QueryEscape(dni), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("dni lookup: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("dni lookup: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		return "", interfaces.ErrNationalIDNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("dni lookup: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out lookupResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("dni lookup: decode: %w", err)
	}
	if out.Nombres == "" {
		return "", interfaces.ErrNationalIDNotFound
	}
	return strings.Join([]string{out.Nombres, out.ApellidoPaterno, out.ApellidoMaterno}, " "), nil
}

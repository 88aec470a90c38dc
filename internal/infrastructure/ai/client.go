package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxResponseBytes = 64 * 1024

// Option ajusta un adaptador; se usa sobre todo en tests.
type Option func(*httpOptions)

type httpOptions struct {
	endpoint string
	client   *http.Client
}

// WithEndpoint reemplaza la URL base del proveedor.
func WithEndpoint(url string) Option {
	return func(o *httpOptions) { o.endpoint = url }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) { o.client = c }
}

func buildOptions(defaultEndpoint string, opts []Option) httpOptions {
	o := httpOptions{
		endpoint: defaultEndpoint,
		// el use case además impone su propio context.WithTimeout
		client: &http.Client{Timeout: 25 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// postJSON envía payload y devuelve el cuerpo de la respuesta y el status.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, 0, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	return raw, resp.StatusCode, nil
}

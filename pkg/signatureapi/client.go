/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

//go:generate mockgen -destination gomocks_test.go -package signatureapi_test . HTTPClient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/pkg/observability/metrics"
	"github.com/trustbloc/sigapi/pkg/observability/metrics/noop"
)

var logger = log.New("signature-api-client", log.WithStdOut(os.Stderr))

// HTTPClient interface for the http client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceInterface defines the signature service operations.
type ServiceInterface interface {
	CreateSignature(ctx context.Context, hash string) (Document, error)
	SubmitSignatureRequest(ctx context.Context, req *SignatureRequest) (Document, error)
	AssignIdentifier(ctx context.Context, signature json.RawMessage) (Document, error)
	GetSignature(ctx context.Context, id string) (Document, error)
}

var _ ServiceInterface = (*Client)(nil)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the signatures endpoint, e.g. https://host/api/v1/signatures.
	BaseURL     string
	Credentials Credentials
	// AuthType defaults to AuthTypeHeader.
	AuthType AuthType
	// Timeout applies to the default HTTP client only. Zero means no timeout.
	Timeout time.Duration
}

// Client is the signature service client.
type Client struct {
	baseURL    string
	auth       authenticator
	httpClient HTTPClient
	metrics    metrics.Metrics
}

// Opt represents Client`s option.
type Opt func(*Client)

// WithHTTPClient allows providing HTTP client.
func WithHTTPClient(client HTTPClient) Opt {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMetrics sets the metrics used to record call durations.
func WithMetrics(m metrics.Metrics) Opt {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new signature service client.
func NewClient(cfg *Config, opts ...Opt) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}

	if cfg.Credentials.ID == "" || cfg.Credentials.Secret == "" {
		return nil, ErrMissingCredentials
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", cfg.BaseURL)
	}

	auth, err := newAuthenticator(cfg.AuthType, cfg.Credentials)
	if err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		auth:       auth,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    noop.GetMetrics(),
	}

	for _, fn := range opts {
		fn(client)
	}

	return client, nil
}

// CreateSignature requests a signature over the given base64-encoded SHA-256 hash.
func (c *Client) CreateSignature(ctx context.Context, hash string) (Document, error) {
	return c.SubmitSignatureRequest(ctx, &SignatureRequest{
		DataHash: DataHash{
			Algorithm: DefaultHashAlgorithm,
			Value:     hash,
		},
	})
}

// SubmitSignatureRequest posts a caller-built signature request. Missing algorithm
// defaults to SHA-256 and nil metadata is sent as an empty object.
func (c *Client) SubmitSignatureRequest(ctx context.Context, req *SignatureRequest) (Document, error) {
	if req == nil {
		return nil, errors.New("create signature: request is nil")
	}

	if req.DataHash.Value == "" {
		return nil, fmt.Errorf("create signature: %w", ErrEmptyHash)
	}

	body := &SignatureRequest{
		DataHash: DataHash{
			Algorithm: lo.Ternary(req.DataHash.Algorithm == "", DefaultHashAlgorithm, req.DataHash.Algorithm),
			Value:     req.DataHash.Value,
		},
		Metadata: lo.Assign(map[string]any{}, req.Metadata),
		Level:    req.Level,
	}

	st := time.Now()

	defer func() {
		c.metrics.CreateSignatureTime(time.Since(st))
	}()

	doc, err := c.send(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return nil, fmt.Errorf("create signature: %w", err)
	}

	return doc, nil
}

// AssignIdentifier asks the service to store the signature and assign it an identifier.
// The signature must be the "signature" value of a create response and is sent unmodified.
func (c *Client) AssignIdentifier(ctx context.Context, signature json.RawMessage) (Document, error) {
	trimmed := bytes.TrimSpace(signature)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("assign identifier: %w", ErrEmptySignature)
	}

	st := time.Now()

	defer func() {
		c.metrics.AssignIdentifierTime(time.Since(st))
	}()

	doc, err := c.send(ctx, http.MethodPut, c.baseURL, &AssignRequest{
		Metadata:  map[string]any{},
		Signature: signature,
	})
	if err != nil {
		return nil, fmt.Errorf("assign identifier: %w", err)
	}

	return doc, nil
}

// GetSignature fetches the stored signature record. The id is appended to the base URL as is.
func (c *Client) GetSignature(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return nil, fmt.Errorf("get signature: %w", ErrEmptyID)
	}

	st := time.Now()

	defer func() {
		c.metrics.GetSignatureTime(time.Since(st))
	}()

	doc, err := c.send(ctx, http.MethodGet, c.baseURL+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get signature: %w", err)
	}

	return doc, nil
}

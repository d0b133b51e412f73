package indexer

//go:generate mockgen -destination=mock/mock_client.go -package=mockindexer . Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// Client reads indexed transactions from the node REST API
type Client interface {
	// TransactionByHash returns the indexed transaction. A transaction the
	// node does not know yet yields a CodeNotFound error, which is retryable.
	TransactionByHash(ctx context.Context, hash string) (*Transaction, error)
}

// Event is one event emitted by a transaction
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Transaction is the subset of the node's transaction payload the demos use
type Transaction struct {
	Hash     string  `json:"hash"`
	Success  bool    `json:"success"`
	VMStatus string  `json:"vm_status"`
	Events   []Event `json:"events"`

	Raw []byte `json:"-"`
}

// EventData returns every event payload in emission order
func (t *Transaction) EventData() []json.RawMessage {
	out := make([]json.RawMessage, 0, len(t.Events))
	for _, e := range t.Events {
		out = append(out, e.Data)
	}
	return out
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the indexer client
type Config struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates an indexer client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.BaseURL == "" {
		return nil, internal.NewMissingParamError("cfg.BaseURL")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, internal.NewInvalidParamError("cfg.BaseURL")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) TransactionByHash(ctx context.Context, hash string) (*Transaction, error) {
	if hash == "" {
		return nil, dnderr.InvalidArgumentf("hash is required")
	}

	endpoint := fmt.Sprintf("%s/transactions/by_hash/%s", c.baseURL, url.PathEscape(hash))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "build indexer request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "fetch transaction").WithMeta("hash", hash)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "read transaction body").WithMeta("hash", hash)
	}

	if NotIndexed(body) {
		return nil, dnderr.NotFoundf("transaction %s not indexed yet", hash).
			WithMeta("status", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, dnderr.Newf(dnderr.CodeUnavailable, "indexer returned status %d", resp.StatusCode).
			WithMeta("hash", hash)
	}

	var tx Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode transaction").WithMeta("hash", hash)
	}
	tx.Raw = body

	return &tx, nil
}

// NotIndexed reports whether a response body means the node has not indexed
// the transaction yet: an empty body, a "not found" message or any error_code.
func NotIndexed(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}

	var probe struct {
		Message   string          `json:"message"`
		ErrorCode json.RawMessage `json:"error_code"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return false
	}

	hasCode := len(probe.ErrorCode) > 0 && string(probe.ErrorCode) != "null"
	return hasCode || strings.EqualFold(probe.Message, "not found")
}

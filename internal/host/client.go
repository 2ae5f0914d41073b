package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gentrystinson/cabquote/internal/quote"
)

// DefaultTimeout is how long a request waits for its response before being
// failed locally.
const DefaultTimeout = 30 * time.Second

// ErrTimeout is returned when the host does not answer within the timeout.
// In-memory state is unaffected; the caller may retry.
var ErrTimeout = errors.New("host request timed out")

// ErrQuoteNotFound is returned by QuoteByID when the host has no quote with
// the requested id.
var ErrQuoteNotFound = errors.New("quote not found")

// HostError is a failure reported by the host itself (success=false).
type HostError struct {
	Type    string
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host %s failed: %s", e.Type, e.Message)
}

// Client issues correlated requests over a Transport. It is safe for
// concurrent use; each in-flight request owns one entry in the pending
// table.
type Client struct {
	transport Transport
	timeout   time.Duration

	mu      sync.Mutex
	pending map[string]chan Response
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 30-second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client over the given transport.
func NewClient(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		timeout:   DefaultTimeout,
		pending:   map[string]chan Response{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve delivers a host response to the request waiting on its correlation
// id. Responses for unknown or already-resolved ids are silently dropped.
func (c *Client) Resolve(resp Response) {
	c.mu.Lock()
	ch, ok := c.pending[resp.CorrelationID]
	if ok {
		delete(c.pending, resp.CorrelationID)
	}
	c.mu.Unlock()
	if ok {
		ch <- resp
	}
}

// call sends one request and waits for its response, the timeout, or context
// cancellation, whichever comes first.
func (c *Client) call(ctx context.Context, typ string, payload any) (json.RawMessage, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", typ, err)
		}
		raw = data
	}

	id := uuid.New().String()
	ch := make(chan Response, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()

	drop := func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}

	if err := c.transport.Send(Request{CorrelationID: id, Type: typ, Payload: raw}); err != nil {
		drop()
		return nil, fmt.Errorf("send %s: %w", typ, err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case resp := <-ch:
		if !resp.Success {
			return nil, &HostError{Type: typ, Message: resp.Error}
		}
		return resp.Result, nil
	case <-timer.C:
		drop()
		return nil, fmt.Errorf("%s: %w", typ, ErrTimeout)
	case <-ctx.Done():
		drop()
		return nil, ctx.Err()
	}
}

// SaveResult is the host's answer to a saveQuote request.
type SaveResult struct {
	Success bool   `json:"success"`
	QuoteID string `json:"quoteId,omitempty"`
}

// SaveQuote sends a quote to the host for persistence and returns the id the
// host stored it under.
func (c *Client) SaveQuote(ctx context.Context, q *quote.Quote) (SaveResult, error) {
	raw, err := c.call(ctx, TypeSaveQuote, q)
	if err != nil {
		return SaveResult{}, err
	}
	var result SaveResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return SaveResult{}, fmt.Errorf("decode saveQuote result: %w", err)
	}
	return result, nil
}

// Quotes fetches the list of saved quote summaries.
func (c *Client) Quotes(ctx context.Context) ([]quote.Summary, error) {
	raw, err := c.call(ctx, TypeGetQuotes, nil)
	if err != nil {
		return nil, err
	}
	var summaries []quote.Summary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("decode getQuotes result: %w", err)
	}
	return summaries, nil
}

// quoteByIDPayload is the getQuoteById request payload.
type quoteByIDPayload struct {
	QuoteID string `json:"quoteId"`
}

// QuoteByID fetches a full quote record. A null result from the host maps to
// ErrQuoteNotFound.
func (c *Client) QuoteByID(ctx context.Context, id string) (*quote.Quote, error) {
	raw, err := c.call(ctx, TypeGetQuoteByID, quoteByIDPayload{QuoteID: id})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%s: %w", id, ErrQuoteNotFound)
	}
	var q quote.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode getQuoteById result: %w", err)
	}
	return &q, nil
}

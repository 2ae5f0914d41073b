package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gentrystinson/cabquote/internal/quote"
)

// LocalHost is a Transport that answers the host message types from a
// QuoteStore. Requests are handled on their own goroutine and answered
// through the connected client's Resolve, so the full correlation path is
// exercised exactly as it would be against a remote host.
type LocalHost struct {
	store   *QuoteStore
	deliver func(Response)
}

// NewLocalHost creates a host over the given store.
func NewLocalHost(store *QuoteStore) *LocalHost {
	return &LocalHost{store: store, deliver: func(Response) {}}
}

// Connect wires the host's responses into a client and returns that client.
func (h *LocalHost) Connect(c *Client) *Client {
	h.deliver = c.Resolve
	return c
}

// Send accepts a request for asynchronous handling. It never fails;
// handler errors come back as unsuccessful responses.
func (h *LocalHost) Send(req Request) error {
	go h.handle(req)
	return nil
}

func (h *LocalHost) handle(req Request) {
	ctx := context.Background()
	resp := Response{CorrelationID: req.CorrelationID}

	result, err := h.dispatch(ctx, req)
	if err != nil {
		slog.Warn("host request failed", "type", req.Type, "error", err)
		resp.Error = err.Error()
	} else {
		resp.Success = true
		resp.Result = result
	}
	h.deliver(resp)
}

func (h *LocalHost) dispatch(ctx context.Context, req Request) (json.RawMessage, error) {
	switch req.Type {
	case TypeSaveQuote:
		var q quote.Quote
		if err := json.Unmarshal(req.Payload, &q); err != nil {
			return nil, err
		}
		id, err := h.store.Save(ctx, &q)
		if err != nil {
			return nil, err
		}
		return json.Marshal(SaveResult{Success: true, QuoteID: id})

	case TypeGetQuotes:
		summaries, err := h.store.List(ctx)
		if err != nil {
			return nil, err
		}
		if summaries == nil {
			summaries = []quote.Summary{}
		}
		return json.Marshal(summaries)

	case TypeGetQuoteByID:
		var payload quoteByIDPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return nil, err
		}
		q, err := h.store.Get(ctx, payload.QuoteID)
		if err != nil {
			return nil, err
		}
		// A missing quote is a null result, not an error; the client maps
		// it to ErrQuoteNotFound.
		return json.Marshal(q)

	default:
		return nil, fmt.Errorf("unrecognized request type %q", req.Type)
	}
}

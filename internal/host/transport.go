// Package host implements the asynchronous message channel between the
// order form core and the host application that owns quote storage. Requests
// carry a generated correlation id; responses are matched back through a
// pending-request table and time out locally after 30 seconds.
package host

import "encoding/json"

// Request types recognized by the host.
const (
	TypeSaveQuote    = "saveQuote"
	TypeGetQuotes    = "getQuotes"
	TypeGetQuoteByID = "getQuoteById"
)

// Request is an outbound message to the host.
type Request struct {
	CorrelationID string          `json:"correlationId"`
	Type          string          `json:"type"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Response is an inbound message from the host. Exactly one response is
// expected per correlation id.
type Response struct {
	CorrelationID string          `json:"correlationId"`
	Success       bool            `json:"success"`
	Result        json.RawMessage `json:"result,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// Transport delivers a request toward the host. Delivery is one-way; the
// host answers by handing a Response to the client's Resolve method.
type Transport interface {
	Send(Request) error
}

package whatsapp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// Webhook handles the Graph API webhook endpoints. Inbound messages are
// acknowledged with 200 before processing so Meta does not retry while a
// conversation turn is in flight.
type Webhook struct {
	verifyToken string
	handle      func(msg InboundText)
	logger      *logging.Logger
}

// NewWebhook creates a webhook handler. handle is invoked once per parsed
// inbound text, after the HTTP response has been committed.
func NewWebhook(verifyToken string, handle func(msg InboundText), logger *logging.Logger) *Webhook {
	return &Webhook{verifyToken: verifyToken, handle: handle, logger: logger}
}

// Verify implements the GET subscription handshake.
func (wh *Webhook) Verify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "" || token == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if mode != "subscribe" || token != wh.verifyToken {
		wh.logger.Warn("webhook verification rejected", "mode", mode)
		w.WriteHeader(http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, challenge)
}

// Receive implements the POST event delivery. It always returns 200 for
// parseable envelopes; processing failures are our problem, not Meta's.
func (wh *Webhook) Receive(w http.ResponseWriter, r *http.Request) {
	var envelope webhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		wh.logger.Warn("undecodable webhook payload", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	for _, msg := range extractMessages(envelope) {
		wh.handle(msg)
	}
}

func extractMessages(envelope webhookEnvelope) []InboundText {
	var out []InboundText
	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" && change.Field != "" {
				continue
			}
			for _, msg := range change.Value.Messages {
				text := msg.text()
				if msg.From == "" {
					continue
				}
				out = append(out, InboundText{From: msg.From, Text: text})
			}
		}
	}
	return out
}

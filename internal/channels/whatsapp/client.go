package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// WhatsApp list messages allow at most 10 rows and 24-character titles.
const (
	maxListRows     = 10
	maxListTitleLen = 24
)

// Sender delivers an outbound message, optionally with quick-reply choices.
type Sender interface {
	Send(ctx context.Context, to, message string, quickReplies []string) error
}

// Client sends messages through the Meta Graph API.
type Client struct {
	baseURL       string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	logger        *logging.Logger
}

func NewClient(baseURL, accessToken, phoneNumberID string, logger *logging.Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
	}
}

// Send delivers message to a recipient. When quickReplies fit WhatsApp's
// interactive-list constraints they are rendered as a list; otherwise the
// numbered options already embedded in the text carry the choices.
func (c *Client) Send(ctx context.Context, to, message string, quickReplies []string) error {
	if renderableAsList(quickReplies) {
		return c.post(ctx, buildListPayload(to, message, quickReplies))
	}
	return c.post(ctx, buildTextPayload(to, message))
}

func renderableAsList(options []string) bool {
	if len(options) == 0 || len(options) > maxListRows {
		return false
	}
	for _, opt := range options {
		if len(opt) == 0 || len([]rune(opt)) > maxListTitleLen {
			return false
		}
	}
	return true
}

func buildTextPayload(to, message string) textPayload {
	p := textPayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
	}
	p.Text.Body = message
	return p
}

func buildListPayload(to, message string, options []string) listPayload {
	p := listPayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
	}
	p.Interactive.Type = "list"
	p.Interactive.Body.Text = message
	p.Interactive.Action.Button = "Options"
	rows := make([]listRow, len(options))
	for i, opt := range options {
		rows[i] = listRow{ID: fmt.Sprintf("option_%d", i+1), Title: opt}
	}
	p.Interactive.Action.Sections = []listSection{{Title: "Choose one", Rows: rows}}
	return p
}

func (c *Client) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("whatsapp send rejected", "status", resp.StatusCode, "body", string(detail))
		return fmt.Errorf("whatsapp: send message: unexpected status %d", resp.StatusCode)
	}
	return nil
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Pushover delivers messages through the Pushover API
// (https://pushover.net/api). Delivery to the user's devices happens on
// Pushover's side; the receipt only confirms the API accepted the message.
type Pushover struct {
	url    string
	token  string
	user   string
	client *http.Client
}

// NewPushover creates a client posting to the given messages endpoint with
// the application token and user key.
func NewPushover(client *http.Client, url, token, user string) *Pushover {
	return &Pushover{
		url:    url,
		token:  token,
		user:   user,
		client: client,
	}
}

// Receipt is the body Pushover answers with. Status 1 means the message was
// accepted; anything else comes with reasons in Errors.
type Receipt struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors,omitempty"`
}

// Send posts message to Pushover and returns the decoded receipt. Missing
// credentials are an error before any request goes out; a non-2xx status is
// an error carrying the response body, where Pushover explains itself.
func (p *Pushover) Send(ctx context.Context, message string) (Receipt, error) {
	if p.token == "" {
		return Receipt{}, fmt.Errorf("pushover token is not configured")
	}
	if p.user == "" {
		return Receipt{}, fmt.Errorf("pushover user is not configured")
	}

	body, err := json.Marshal(struct {
		Token   string `json:"token"`
		User    string `json:"user"`
		Message string `json:"message"`
	}{
		Token:   p.token,
		User:    p.user,
		Message: message,
	})
	if err != nil {
		return Receipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Receipt{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Receipt{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Receipt{}, fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, respBody)
	}

	var receipt Receipt
	if err := json.Unmarshal(respBody, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("decode receipt: %w", err)
	}
	return receipt, nil
}

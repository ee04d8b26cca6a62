package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type chatResponse struct {
	Reply string `json:"reply"`
}

// Ask sends one chat question and returns the assistant's reply text. The
// userID may be empty; the service then answers without profile context.
// An empty reply with a successful status is returned as-is so the caller
// can substitute its fallback text.
func (client *Client) Ask(ctx context.Context, userID string, question string) (string, error) {
	path := "/chat?question=" + url.QueryEscape(question)
	request, err := client.newRequest(ctx, http.MethodGet, path, userID, nil)
	if err != nil {
		return "", err
	}

	body := chatResponse{}
	if err := client.doJSON(request, &body); err != nil {
		return "", err
	}
	return strings.TrimSpace(body.Reply), nil
}

package upstream

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID string `json:"user_id"`
}

// SignUp registers a new account and returns the identifier the service
// assigned to it.
func (client *Client) SignUp(ctx context.Context, email string, password string) (string, error) {
	return client.authenticate(ctx, "/signup", email, password)
}

// SignIn exchanges credentials for the account's identifier.
func (client *Client) SignIn(ctx context.Context, email string, password string) (string, error) {
	return client.authenticate(ctx, "/signin", email, password)
}

func (client *Client) authenticate(ctx context.Context, path string, email string, password string) (string, error) {
	request, err := client.newRequest(ctx, http.MethodPost, path, "", credentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	body := authResponse{}
	if err := client.doJSON(request, &body); err != nil {
		return "", err
	}

	userID := strings.TrimSpace(body.UserID)
	if userID == "" {
		return "", errors.New("service response is missing user_id")
	}
	return userID, nil
}

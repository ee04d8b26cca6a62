package upstream

import (
	"context"
	"net/http"

	"github.com/mtareb/medichat/internal/models"
)

const personalInfoPath = "/api/personal-info"

// FetchProfile loads the health record stored for the given identifier.
func (client *Client) FetchProfile(ctx context.Context, userID string) (models.Profile, error) {
	request, err := client.newRequest(ctx, http.MethodGet, personalInfoPath, userID, nil)
	if err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{}
	if err := client.doJSON(request, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// SaveProfile replaces the stored health record with the given payload.
func (client *Client) SaveProfile(ctx context.Context, userID string, payload models.ProfilePayload) error {
	request, err := client.newRequest(ctx, http.MethodPost, personalInfoPath, userID, payload)
	if err != nil {
		return err
	}
	return client.doJSON(request, nil)
}

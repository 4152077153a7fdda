package authsdk

import (
	"context"
	"net/http"
)

// BootstrapTokenHeader carries the one-time bootstrap token.
const BootstrapTokenHeader = "X-Bootstrap-Token"

// Bootstrap creates the first approved administrator.
func (c *SDKClient) Bootstrap(
	ctx context.Context,
	token string,
	req BootstrapRequest,
) (*BootstrapResponse, error) {
	var out BootstrapResponse
	err := c.postJSON(ctx, "/api/auth/bootstrap", req, &out, http.StatusCreated,
		map[string]string{BootstrapTokenHeader: token})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

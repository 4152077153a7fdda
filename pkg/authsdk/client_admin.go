package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// AdminApprove approves a user and provisions their second factor. The
// returned secret is shown exactly once.
func (c *SDKClient) AdminApprove(ctx context.Context, req AdminActionRequest) (*AdminApproveResponse, error) {
	var out AdminApproveResponse
	if err := c.postJSON(ctx, "/api/auth/admin-approve", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminReject marks a user as rejected.
func (c *SDKClient) AdminReject(ctx context.Context, req AdminActionRequest) (*SuccessResponse, error) {
	var out SuccessResponse
	if err := c.postJSON(ctx, "/api/auth/admin-reject", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns every account, oldest first.
func (c *SDKClient) ListUsers(ctx context.Context, adminID string) (*ListUsersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/users?adminId="+url.QueryEscape(adminID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// IdentityClient implements ports.TokenVerifier against the identity service.
type IdentityClient struct {
	httpClient
}

func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{httpClient: newHTTPClient(baseURL, timeout)}
}

type verifyReply struct {
	Status   domain.Status `json:"status"`
	Username string        `json:"user"`
	Employee bool          `json:"employee"`
}

// Verify asks the identity service whether the token is valid. A rejection is
// a Valid=false decision, not an error; errors mean the service could not be
// reached or answered unexpectedly.
func (c *IdentityClient) Verify(ctx context.Context, token string) (domain.AuthDecision, error) {
	var reply verifyReply
	code, err := c.getJSON(ctx, "/verify?jwt="+url.QueryEscape(token), &reply)
	if err != nil {
		return domain.AuthDecision{}, err
	}

	switch code {
	case http.StatusOK:
		return domain.AuthDecision{Valid: true, Username: reply.Username, Employee: reply.Employee}, nil
	case http.StatusUnauthorized:
		return domain.AuthDecision{}, nil
	default:
		return domain.AuthDecision{}, fmt.Errorf("verify token: unexpected status %d", code)
	}
}

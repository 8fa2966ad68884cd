package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// AuditClient implements ports.AuditClient against the audit service.
type AuditClient struct {
	httpClient
}

func NewAuditClient(baseURL string, timeout time.Duration) *AuditClient {
	return &AuditClient{httpClient: newHTTPClient(baseURL, timeout)}
}

type recordEventBody struct {
	Event       string `json:"event"`
	Username    string `json:"user"`
	ProductName string `json:"name,omitempty"`
}

type lastModReply struct {
	Status  domain.Status `json:"status"`
	LastMod string        `json:"last_mod"`
}

func (c *AuditClient) Record(ctx context.Context, event, username, productName string) error {
	body := recordEventBody{Event: event, Username: username, ProductName: productName}
	code, err := c.postJSON(ctx, "/log", body, nil)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("record event %q: unexpected status %d", event, code)
	}
	return nil
}

func (c *AuditClient) LastModifier(ctx context.Context, productName string) (string, error) {
	var reply lastModReply
	code, err := c.getJSON(ctx, "/last_mod?product_name="+url.QueryEscape(productName), &reply)
	if err != nil {
		return "", err
	}

	switch code {
	case http.StatusOK:
		return reply.LastMod, nil
	case http.StatusNotFound:
		return "", domain.ErrNoHistory
	default:
		return "", fmt.Errorf("last modifier of %q: unexpected status %d", productName, code)
	}
}

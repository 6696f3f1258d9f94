package auphonic

import (
	"context"
	"net/http"

	"github.com/akordowski/auphonic-go/pkg/precondition"
)

// GetServiceFiles lists the files available on an incoming service
func (c *Client) GetServiceFiles(ctx context.Context, serviceUUID string) ([]string, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotBlank(serviceUUID, "serviceUuid"); err != nil {
		return nil, err
	}

	req := NewRequest("api/service/{serviceUuid}/ls.json", http.MethodGet).
		AddURLSegment("serviceUuid", serviceUUID)
	return call[[]string](ctx, c, req, AuthBearer, BodyNone)
}

// GetServices retrieves the external services connected to the account
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	return call[[]Service](ctx, c, NewRequest("api/services.json", http.MethodGet), AuthBearer, BodyNone)
}

package auphonic

import (
	"context"
	"net/http"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"go.uber.org/zap"
)

// AuthenticateWithPassword exchanges the user's credentials for an access
// token and starts a session with it.
func (c *Client) AuthenticateWithPassword(ctx context.Context, username, password string) (*OAuthToken, error) {
	if err := precondition.First(
		precondition.NotBlank(username, "username"),
		precondition.NotBlank(password, "password"),
	); err != nil {
		return nil, err
	}

	c.logger.Info("Authenticating with Auphonic", zap.String("username", username))

	req := NewRequest("oauth2/token/", http.MethodPost).
		AddParameter("client_id", c.clientID).
		AddParameter("username", username).
		AddParameter("password", password).
		AddParameter("grant_type", "password")

	var token OAuthToken
	if err := c.execute(ctx, req, AuthBasic, BodyNone, &token); err != nil {
		return nil, err
	}

	c.setAccessToken(token.AccessToken)
	c.logger.Info("Successfully authenticated",
		zap.String("token_type", token.TokenType),
		zap.Int("expires_in", token.ExpiresIn))

	return &token, nil
}

// GetAccountInfo retrieves the account of the session user
func (c *Client) GetAccountInfo(ctx context.Context) (*Account, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	return call[*Account](ctx, c, NewRequest("api/user.json", http.MethodGet), AuthBearer, BodyNone)
}

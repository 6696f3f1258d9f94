// Package auphonic provides a client for the Auphonic audio post-production API.
//
// A Client is created with the OAuth application credentials and starts
// without a session. Public reference data (GetInfo, GetAlgorithms, ...)
// works right away; account operations need a session, started with
// Authenticate (existing token) or AuthenticateWithPassword (password grant).
//
//	client, err := auphonic.New(clientID, clientSecret, auphonic.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	if _, err := client.AuthenticateWithPassword(ctx, username, password); err != nil {
//		return err
//	}
//	production, err := client.GetProduction(ctx, uuid)
//
// Every call is a single request; nothing is retried. Errors fall into four
// categories, reported by Classify:
//
//   - *precondition.ArgumentError: an argument was rejected before any request was sent
//   - *AuthenticationError: no session, rejected credentials or an invalid token
//   - *APIError: any other failed call, with the API error code and raw body
//   - anything else: a transport failure from net/http, including context cancellation
//
// Operations run on the caller's goroutine. Go runs one on its own goroutine
// and returns a Pending result.
package auphonic

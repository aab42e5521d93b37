package auth

import (
	"fmt"
	"net/url"

	"github.com/courtside/euroleague-go/pkg/apierr"
)

// ParseCallback extracts the authorization code and state from the redirect
// URL the provider sent the user back to. A provider error response on the
// redirect becomes an AuthenticationError.
//
// Callers must compare the returned state against the one from
// AuthorizationURL before exchanging the code.
func ParseCallback(callbackURL string) (code, state string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse callback URL: %w", err)
	}

	query := u.Query()

	if errorCode := query.Get("error"); errorCode != "" {
		return "", "", &apierr.AuthenticationError{
			Message: fmt.Sprintf("Authorization failed: %s - %s", errorCode, query.Get("error_description")),
		}
	}

	code = query.Get("code")
	if code == "" {
		return "", "", &apierr.AuthenticationError{Message: "Callback missing authorization code"}
	}

	return code, query.Get("state"), nil
}

// Package identity bootstraps the caller's identity for the booking store.
// A provisioned token is tried first; any failure falls back to an anonymous
// identity, so Establish itself never fails. The result is only a readiness
// gate for submissions, not an authorization layer.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Identity is the established caller identity.
type Identity struct {
	UID       string
	Anonymous bool
}

// Establish signs in with the provisioned token when one is supplied and
// falls back to an anonymous identity otherwise.
func Establish(token string) Identity {
	if id, err := FromToken(token); err == nil {
		return id
	}
	return Anonymous()
}

// FromToken validates a provisioned token of the form "uid:secret".
func FromToken(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, errors.New("identity: no token provisioned")
	}
	uid, secret, ok := strings.Cut(token, ":")
	if !ok || uid == "" || secret == "" {
		return Identity{}, fmt.Errorf("identity: malformed token")
	}
	return Identity{UID: uid}, nil
}

// Anonymous mints a throwaway identity.
func Anonymous() Identity {
	return Identity{UID: uuid.NewString(), Anonymous: true}
}

package service

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
)

// Session is the authenticated-identity snapshot for the current visit.
type Session struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// IdentityClient is the slice of the Firebase Auth client the session
// service uses.
type IdentityClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// SessionService wraps the external identity provider. It is constructed
// once and passed to the handlers that need it, so tests can substitute a
// fake client.
type SessionService struct {
	client IdentityClient
}

func NewSessionService(client IdentityClient) *SessionService {
	return &SessionService{client: client}
}

// CurrentUser resolves an ID token into a session snapshot. An empty token
// means no user is signed in; that is not an error.
func (s *SessionService) CurrentUser(ctx context.Context, idToken string) (*Session, error) {
	if idToken == "" {
		return nil, nil
	}

	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		// Session-restore failure is treated as "no user".
		return nil, nil
	}

	sess := &Session{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		sess.Email = email
	}
	return sess, nil
}

// SignOut revokes the user's refresh tokens. Errors are logged and
// swallowed; sign-out never fails from the caller's point of view.
func (s *SessionService) SignOut(ctx context.Context, uid string) {
	if uid == "" {
		return
	}
	if err := s.client.RevokeRefreshTokens(ctx, uid); err != nil {
		log.Printf("Error signing out user %s: %v", uid, err)
	}
}

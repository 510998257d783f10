// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"
)

// LoginInput defines the data required for a user to sign in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionOutput returns the tokens and routing data after a successful
// sign-in or refresh.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
	Screen       entity.Screen
}

// SessionUsecase defines the interface for authentication sessions.
type SessionUsecase interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// The response carries the screen the caller's role routes to.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Refresh rotates a refresh token: the presented token is revoked and a
	// new pair is issued in its place.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

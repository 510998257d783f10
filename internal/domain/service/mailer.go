package service

import "context"

// InviteEmail carries the fields rendered into the resident invite message.
type InviteEmail struct {
	To        string // Recipient address.
	Token     string // One-time invite token embedded in the accept link.
	UnitLabel string // Display label of the invited unit.
}

// Mailer defines the interface for outbound transactional email.
type Mailer interface {
	// SendInviteEmail sends the resident invitation message.
	SendInviteEmail(ctx context.Context, email *InviteEmail) error
}

package adapter

import "context"

// MessagingService defines the interface for the WhatsApp relay used to
// dispatch payment reminders.
type MessagingService interface {
	// SendMessage posts a text message to the given recipient JID.
	SendMessage(ctx context.Context, phone, message string) error
}

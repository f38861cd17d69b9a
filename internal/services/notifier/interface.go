package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/wordduel/internal/services/notifier Sender

import "context"

// Sender delivers a notification to one user. Delivery is best effort;
// callers log failures and carry on.
type Sender interface {
	Send(ctx context.Context, uid string, payload *Notification) error
}

// Package notify sends the SOS side-channel message to an employee's first
// emergency contact.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, to, message string) error
}

// SOSMessage is the text sent when an alert is raised.
func SOSMessage(employeeName, contactPhone string) string {
	return fmt.Sprintf("SOS Alert! %s needs help! Contact: %s", employeeName, contactPhone)
}

// LogNotifier stands in when no SMS provider is configured: the message is
// logged instead of sent, so dev setups still show the full flow.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Send(_ context.Context, to, message string) error {
	n.Logger.Info("sos notification (sms disabled)",
		zap.String("to", to),
		zap.String("message", message),
	)
	return nil
}

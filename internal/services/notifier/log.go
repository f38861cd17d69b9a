package notifier

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"go.uber.org/zap"
)

type logSender struct {
	log *zap.SugaredLogger
}

// NewLog returns a Sender that only logs notifications. Used when no
// transport is configured.
func NewLog(log *zap.SugaredLogger) Sender {
	return &logSender{log: logger.OrNop(log)}
}

func (s *logSender) Send(_ context.Context, uid string, payload *Notification) error {
	s.log.Infow("notification",
		"uid", uid,
		"match_id", payload.MatchID,
		"kind", payload.Kind,
		"title", payload.Title,
		"body", payload.Body,
	)
	return nil
}

package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

// Logger назначает rqID каждому обновлению и логирует время обработки.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			rqID := uuid.NewString()
			c.Set("rqID", rqID)

			var chatID int64
			if c.Chat() != nil {
				chatID = c.Chat().ID
			}

			start := time.Now()
			err := next(c)

			logAttrs := []any{
				slog.String("rqID", rqID),
				slog.Int64("chatID", chatID),
				slog.String("duration", time.Since(start).String()),
			}
			if err != nil {
				logAttrs = append(logAttrs, slog.String("err", err.Error()))
				slog.Error("update processed with error", logAttrs...)
				return err
			}

			slog.Info("update processed", logAttrs...)
			return nil
		}
	}
}

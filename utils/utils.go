package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const rqIDKey ctxKey = "rqID"

// CreateCtxWithRqID создает контекст с уникальным request id для сквозного логирования.
func CreateCtxWithRqID(c tele.Context) context.Context {
	ctx := context.Background()
	if c != nil {
		if rqID, ok := c.Get("rqID").(string); ok && rqID != "" {
			return context.WithValue(ctx, rqIDKey, rqID)
		}
	}
	return context.WithValue(ctx, rqIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey).(string)
	if !ok {
		return ""
	}
	return rqID
}

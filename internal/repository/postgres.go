package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/utils"

	"github.com/jmoiron/sqlx"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) GetEmailByChatId(ctx context.Context, chatId int64) (email string, err error) {
	op := "Postgres.GetEmailByChatId"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT email FROM emails WHERE chat_id = $1`

	err = r.db.QueryRowxContext(ctx, query, chatId).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn(
				"No rows in result set for chatId",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int64("chatId", chatId),
			)
			return "", ErrNoRows
		}
		slog.Error(
			"Failed to get email by chatId",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return "", err
	}

	return email, nil
}

func (r *Postgres) UpsertEmail(ctx context.Context, chatId int64, email string) error {
	op := "Postgres.UpsertEmail"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO emails (chat_id, email) VALUES ($1, $2) ON CONFLICT(chat_id) DO UPDATE SET email = EXCLUDED.email;`

	_, err := r.db.ExecContext(ctx, query, chatId, email)
	if err != nil {
		slog.Error(
			"Failed to upsert email for chatId",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
			slog.String("email", email),
		)
		return err
	}

	slog.Info(
		"Email upserted successfully to DB",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("email", email),
		slog.Int64("chatId", chatId),
	)
	return nil
}

func (r *Postgres) DeleteEmailByChatId(ctx context.Context, chatId int64) error {
	op := "Postgres.DeleteEmail"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `DELETE FROM emails WHERE chat_id = $1`

	_, err := r.db.ExecContext(ctx, query, chatId)
	if err != nil {
		slog.Error(
			"Failed to delete email",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return err
	}
	return nil
}

func (r *Postgres) AddFavorite(ctx context.Context, chatId int64, book model.FavoriteBook) error {
	op := "Postgres.AddFavorite"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO favorites (chat_id, volume_id, title, authors) VALUES ($1, $2, $3, $4)
		ON CONFLICT(chat_id, volume_id) DO NOTHING;`

	_, err := r.db.ExecContext(ctx, query, chatId, book.VolumeID, book.Title, book.Authors)
	if err != nil {
		slog.Error(
			"Failed to add favorite",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
			slog.String("volumeID", book.VolumeID),
		)
		return err
	}

	return nil
}

func (r *Postgres) DeleteFavorite(ctx context.Context, chatId int64, volumeID string) error {
	op := "Postgres.DeleteFavorite"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `DELETE FROM favorites WHERE chat_id = $1 AND volume_id = $2`

	_, err := r.db.ExecContext(ctx, query, chatId, volumeID)
	if err != nil {
		slog.Error(
			"Failed to delete favorite",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
			slog.String("volumeID", volumeID),
		)
		return err
	}

	return nil
}

func (r *Postgres) GetFavoritesByChatId(ctx context.Context, chatId int64) ([]model.FavoriteBook, error) {
	op := "Postgres.GetFavoritesByChatId"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT volume_id, title, authors FROM favorites WHERE chat_id = $1 ORDER BY created_at DESC`

	books := make([]model.FavoriteBook, 0)
	err := r.db.SelectContext(ctx, &books, query, chatId)
	if err != nil {
		slog.Error(
			"Failed to get favorites",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatId", chatId),
		)
		return nil, err
	}

	if len(books) == 0 {
		return nil, ErrNoRows
	}

	return books, nil
}

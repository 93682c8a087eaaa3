package googleDriveApi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gbooks_tgbot/config"
	"gbooks_tgbot/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type GoogleDriveApi struct {
	cfg     *config.Config
	service *drive.Service
}

func New(ctx context.Context, cfg *config.Config) *GoogleDriveApi {
	service, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.GoogleDrive.CredentialsFile))
	if err != nil {
		slog.Error("Error while creating drive service", slog.String("err", err.Error()))
		panic(err)
	}

	slog.Info("Google drive service created")

	return &GoogleDriveApi{cfg: cfg, service: service}
}

// UploadFile загружает файл на диск, открывает доступ по ссылке и возвращает ссылку скачивания.
func (g *GoogleDriveApi) UploadFile(ctx context.Context, reader io.Reader, filename string) (downloadLink string, err error) {
	op := "GoogleDriveApi.UploadFile"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("UploadFile start", slog.String("rqID", rqID), slog.String("op", op), slog.String("filename", filename))

	fileMeta := &drive.File{Name: filename}
	if g.cfg.GoogleDrive.FolderId != "" {
		fileMeta.Parents = []string{g.cfg.GoogleDrive.FolderId}
	}

	created, err := g.service.Files.Create(fileMeta).
		Media(reader).
		Fields("id", "webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create drive file: %w", err)
	}

	_, err = g.service.Permissions.Create(created.Id, &drive.Permission{Type: "anyone", Role: "reader"}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create drive permission: %w", err)
	}

	downloadLink = created.WebContentLink
	if downloadLink == "" {
		downloadLink = fmt.Sprintf("https://drive.google.com/uc?id=%s&export=download", created.Id)
	}

	slog.Info("UploadFile finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("fileId", created.Id))

	return downloadLink, nil
}

// DeleteOldFiles удаляет файлы старше настроенного TTL. Запускается шедулером.
func (g *GoogleDriveApi) DeleteOldFiles(ctx context.Context) error {
	op := "GoogleDriveApi.DeleteOldFiles"

	cutoff := time.Now().Add(-g.cfg.GoogleDrive.FileTTL).UTC().Format(time.RFC3339)
	query := fmt.Sprintf("modifiedTime < '%s' and trashed = false", cutoff)
	if g.cfg.GoogleDrive.FolderId != "" {
		query += fmt.Sprintf(" and '%s' in parents", g.cfg.GoogleDrive.FolderId)
	}

	list, err := g.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("list drive files: %w", err)
	}

	for _, file := range list.Files {
		if err := g.service.Files.Delete(file.Id).Context(ctx).Do(); err != nil {
			slog.Error(
				"failed to delete drive file",
				slog.String("op", op),
				slog.String("fileId", file.Id),
				slog.String("name", file.Name),
				slog.String("err", err.Error()),
			)
			continue
		}
		slog.Info("deleted old drive file", slog.String("op", op), slog.String("fileId", file.Id), slog.String("name", file.Name))
	}

	return nil
}

package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"gbooks_tgbot/config"
	"gbooks_tgbot/utils"
)

type FileDownloader struct {
	client *http.Client
}

func NewFileDownloader(cfg *config.Config) *FileDownloader {
	client := &http.Client{}

	if cfg.ProxyUrl != "" {
		proxyURL, err := url.Parse(cfg.ProxyUrl)
		if err != nil {
			slog.Error("failed to parse proxy url", slog.String("proxyUrl", cfg.ProxyUrl), slog.String("err", err.Error()))
		} else {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &FileDownloader{client: client}
}

// Download скачивает файл в память. Google не всегда отдает Content-Disposition,
// поэтому имя файла из заголовка берем при наличии, иначе используем fallbackFilename.
func (f *FileDownloader) Download(ctx context.Context, fileUrl string, fallbackFilename string) (fileBytes []byte, filename string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "FileDownloader.Download"
	slog.Info("Download start", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", fileUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileUrl, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.New("response status not ok")
	}

	filename = fallbackFilename
	if contentDisposition := resp.Header.Get("Content-Disposition"); contentDisposition != "" {
		_, params, err := mime.ParseMediaType(contentDisposition)
		if err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}

	if filename == "" {
		return nil, "", errors.New("filename is empty")
	}

	fileBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body err: %w", err)
	}

	slog.Info("Download finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", fileUrl))

	return fileBytes, filename, nil
}

package bookFinderService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gbooks_tgbot/config"
	"gbooks_tgbot/data/cache"
	"gbooks_tgbot/internal/googlebooks"
	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/internal/repository"
	"gbooks_tgbot/internal/service"
	"gbooks_tgbot/utils"
)

//go:generate mockgen -source=bookFinderService.go -destination=mocks/mocks.go -package=mocks

type Cache interface {
	GetBooksForPage(ctx context.Context, title, author string, page int) (model.BooksPage, error)
	SetBooksForPage(ctx context.Context, booksPage model.BooksPage) error
	GetVolume(ctx context.Context, volumeID string) (model.Volume, error)
	SetVolume(ctx context.Context, volume model.Volume) error
}

type BooksApi interface {
	Search(ctx context.Context, params googlebooks.SearchParams) (googlebooks.SearchResult, error)
	VolumeByID(ctx context.Context, volumeID string) (model.Volume, error)
}

type Repository interface {
	GetEmailByChatId(ctx context.Context, chatId int64) (email string, err error)
	UpsertEmail(ctx context.Context, chatId int64, email string) error
	DeleteEmailByChatId(ctx context.Context, chatId int64) error
	AddFavorite(ctx context.Context, chatId int64, book model.FavoriteBook) error
	DeleteFavorite(ctx context.Context, chatId int64, volumeID string) error
	GetFavoritesByChatId(ctx context.Context, chatId int64) ([]model.FavoriteBook, error)
}

type CloudStorageApi interface {
	UploadFile(ctx context.Context, reader io.Reader, filename string) (downloadLink string, err error)
}

type FileDownloader interface {
	Download(ctx context.Context, fileUrl string, fallbackFilename string) (fileBytes []byte, filename string, err error)
}

type Mailer interface {
	SendFile(ctx context.Context, to string, fileName string, fileContent []byte) error
}

type BookFinderService struct {
	cfg             *config.Config
	repo            Repository
	cache           Cache
	booksApi        BooksApi
	cloudStorageApi CloudStorageApi
	fileDownloader  FileDownloader
	mailer          Mailer
}

func New(
	cfg *config.Config,
	repo Repository,
	cache Cache,
	booksApi BooksApi,
	cloudStorageApi CloudStorageApi,
	fileDownloader FileDownloader,
	mailer Mailer,
) *BookFinderService {
	return &BookFinderService{
		cfg:             cfg,
		repo:            repo,
		cache:           cache,
		booksApi:        booksApi,
		cloudStorageApi: cloudStorageApi,
		fileDownloader:  fileDownloader,
		mailer:          mailer,
	}
}

// GetBooksForPage возвращает страницу превью книг: сначала смотрим кэш,
// при промахе идем в Google Books API и кэшируем результат.
func (s *BookFinderService) GetBooksForPage(ctx context.Context, request model.BookSearchRequest) (model.BooksPage, error) {
	op := "BookFinderService.GetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	booksPage, err := s.cache.GetBooksForPage(ctx, request.Title, request.Author, request.Page)
	if err == nil {
		slog.Debug("books page from cache", slog.String("rqID", rqID), slog.String("op", op))
		return booksPage, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Error("got error from cache.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	query := googlebooks.NewQuery()
	query.Include(request.Title)
	if request.Author != "" {
		query.Author().Include(request.Author)
	}

	limit := s.cfg.BooksPerPage
	offset := request.Page * limit

	result, err := s.booksApi.Search(ctx, googlebooks.SearchParams{
		Query:      query,
		StartIndex: offset,
		MaxResults: limit,
		PrintType:  googlebooks.PrintTypeBooks,
	})
	if err != nil {
		slog.Error("got error from booksApi.Search", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BooksPage{}, fmt.Errorf("search books: %w", err)
	}

	if len(result.Items) == 0 {
		return model.BooksPage{}, service.ErrNotFound
	}

	books := make([]model.BookPreview, 0, len(result.Items))
	for _, volume := range result.Items {
		books = append(books, model.BookPreview{
			VolumeID: volume.ID,
			Title:    volume.VolumeInfo.Title,
			Authors:  volume.VolumeInfo.Authors,
			Year:     volume.VolumeInfo.PublishedYear(),
		})
	}

	booksPage = model.BooksPage{
		Books:       books,
		HasNextPage: offset+len(result.Items) < result.TotalItems,
		Page:        request.Page,
		Title:       request.Title,
		Author:      request.Author,
	}

	if err := s.cache.SetBooksForPage(context.WithoutCancel(ctx), booksPage); err != nil {
		slog.Error("got error from cache.SetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return booksPage, nil
}

// GetBookDetails возвращает том по id, с кэшированием.
func (s *BookFinderService) GetBookDetails(ctx context.Context, volumeID string) (model.Volume, error) {
	op := "BookFinderService.GetBookDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	volume, err := s.cache.GetVolume(ctx, volumeID)
	if err == nil {
		return volume, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Error("got error from cache.GetVolume", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	volume, err = s.booksApi.VolumeByID(ctx, volumeID)
	if err != nil {
		if errors.Is(err, googlebooks.ErrVolumeNotFound) {
			return model.Volume{}, service.ErrNotFound
		}
		slog.Error("got error from booksApi.VolumeByID", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Volume{}, err
	}

	if err := s.cache.SetVolume(context.WithoutCancel(ctx), volume); err != nil {
		slog.Error("got error from cache.SetVolume", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return volume, nil
}

func (s *BookFinderService) SetEmail(ctx context.Context, chatID int64, email string) error {
	return s.repo.UpsertEmail(ctx, chatID, email)
}

func (s *BookFinderService) GetEmail(ctx context.Context, chatID int64) (string, error) {
	email, err := s.repo.GetEmailByChatId(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return "", service.ErrEmailNotLinked
		}
		return "", err
	}
	return email, nil
}

func (s *BookFinderService) DeleteEmail(ctx context.Context, chatID int64) error {
	return s.repo.DeleteEmailByChatId(ctx, chatID)
}

// DownloadBook скачивает файл тома, если accessInfo дает прямую ссылку.
// format - epub или pdf, пустая строка означает любой доступный (epub приоритетнее).
func (s *BookFinderService) DownloadBook(ctx context.Context, volumeID string, format string) (fileBytes []byte, filename string, err error) {
	volume, err := s.GetBookDetails(ctx, volumeID)
	if err != nil {
		return nil, "", err
	}

	downloadUrl, ext := pickDownloadRef(volume, format)
	if downloadUrl == "" {
		return nil, "", service.ErrNoDownload
	}

	fallbackFilename := sanitizeFilename(volume.VolumeInfo.Title) + ext

	fileBytes, filename, err = s.fileDownloader.Download(ctx, downloadUrl, fallbackFilename)
	if err != nil {
		return nil, "", fmt.Errorf("download book error: %w", err)
	}

	return fileBytes, filename, nil
}

func (s *BookFinderService) SendBookToKindle(ctx context.Context, volumeID string, chatID int64) error {
	email, err := s.GetEmail(ctx, chatID)
	if err != nil {
		return err
	}

	fileBytes, filename, err := s.DownloadBook(ctx, volumeID, "")
	if err != nil {
		return err
	}

	return s.mailer.SendFile(ctx, email, filename, fileBytes)
}

func (s *BookFinderService) UploadFileToCloud(ctx context.Context, reader io.Reader, filename string) (downloadLink string, err error) {
	downloadLink, err = s.cloudStorageApi.UploadFile(ctx, reader, filename)
	if err != nil {
		return "", err
	}
	return downloadLink, nil
}

func (s *BookFinderService) AddFavorite(ctx context.Context, chatID int64, volumeID string) error {
	volume, err := s.GetBookDetails(ctx, volumeID)
	if err != nil {
		return err
	}

	return s.repo.AddFavorite(ctx, chatID, model.FavoriteBook{
		VolumeID: volume.ID,
		Title:    volume.VolumeInfo.Title,
		Authors:  strings.Join(volume.VolumeInfo.Authors, ", "),
	})
}

func (s *BookFinderService) DeleteFavorite(ctx context.Context, chatID int64, volumeID string) error {
	return s.repo.DeleteFavorite(ctx, chatID, volumeID)
}

func (s *BookFinderService) GetFavorites(ctx context.Context, chatID int64) ([]model.FavoriteBook, error) {
	books, err := s.repo.GetFavoritesByChatId(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return books, nil
}

// pickDownloadRef отдает ссылку запрошенного формата, без формата - epub, затем pdf.
func pickDownloadRef(volume model.Volume, format string) (downloadUrl, ext string) {
	refs := volume.DownloadRefs()

	if format != "" {
		if link, ok := refs[format]; ok {
			return link, "." + format
		}
		return "", ""
	}

	if link, ok := refs["epub"]; ok {
		return link, ".epub"
	}
	if link, ok := refs["pdf"]; ok {
		return link, ".pdf"
	}
	return "", ""
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return strings.TrimSpace(name)
}

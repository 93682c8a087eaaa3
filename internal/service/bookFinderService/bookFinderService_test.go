package bookFinderService

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"gbooks_tgbot/config"
	"gbooks_tgbot/data/cache"
	"gbooks_tgbot/internal/googlebooks"
	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/internal/repository"
	"gbooks_tgbot/internal/service"
	"gbooks_tgbot/internal/service/bookFinderService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type bookFinderServiceSuite struct {
	suite.Suite

	mockCtrl        *gomock.Controller
	service         *BookFinderService
	cfg             *config.Config
	repo            *mocks.MockRepository
	cache           *mocks.MockCache
	booksApi        *mocks.MockBooksApi
	cloudStorageApi *mocks.MockCloudStorageApi
	fileDownloader  *mocks.MockFileDownloader
	mailer          *mocks.MockMailer
}

func TestBookFinderServiceSuite(t *testing.T) {
	suite.Run(t, new(bookFinderServiceSuite))
}

func (s *bookFinderServiceSuite) SetupSuite() {
	s.cfg = &config.Config{
		BooksPerPage: 10,
	}
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *bookFinderServiceSuite) SetupTest() {
	s.repo = mocks.NewMockRepository(s.mockCtrl)
	s.cache = mocks.NewMockCache(s.mockCtrl)
	s.booksApi = mocks.NewMockBooksApi(s.mockCtrl)
	s.cloudStorageApi = mocks.NewMockCloudStorageApi(s.mockCtrl)
	s.fileDownloader = mocks.NewMockFileDownloader(s.mockCtrl)
	s.mailer = mocks.NewMockMailer(s.mockCtrl)

	s.service = New(s.cfg, s.repo, s.cache, s.booksApi, s.cloudStorageApi, s.fileDownloader, s.mailer)
}

func (s *bookFinderServiceSuite) Test_SetEmail_Success() {
	var chatID int64 = 1
	email := "test@gmail.com"
	ctx := context.Background()

	s.repo.EXPECT().
		UpsertEmail(ctx, chatID, email).
		Return(nil)

	err := s.service.SetEmail(ctx, chatID, email)

	assert.Nil(s.T(), err)
}

func (s *bookFinderServiceSuite) Test_DeleteEmail_Success() {
	var chatID int64 = 1
	ctx := context.Background()

	s.repo.EXPECT().
		DeleteEmailByChatId(ctx, chatID).
		Return(nil)

	err := s.service.DeleteEmail(ctx, chatID)

	assert.Nil(s.T(), err)
}

func (s *bookFinderServiceSuite) Test_GetEmail_Success() {
	var chatID int64 = 1
	email := "test@gmail.com"
	ctx := context.Background()

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return(email, nil)

	res, err := s.service.GetEmail(ctx, chatID)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), email, res)
}

func (s *bookFinderServiceSuite) Test_GetEmail_NotLinkedErr() {
	var chatID int64 = 1
	ctx := context.Background()
	expectedErr := service.ErrEmailNotLinked

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return("", repository.ErrNoRows)

	_, err := s.service.GetEmail(ctx, chatID)

	assert.Equal(s.T(), expectedErr, err)
}

func (s *bookFinderServiceSuite) Test_GetEmail_RepoErr() {
	var chatID int64 = 1
	ctx := context.Background()
	expectedErr := errors.New("some error")

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return("", expectedErr)

	_, err := s.service.GetEmail(ctx, chatID)

	assert.Equal(s.T(), expectedErr, err)
}

func (s *bookFinderServiceSuite) Test_GetBooksForPage_SuccessFromCache() {
	ctx := context.Background()
	request := model.BookSearchRequest{
		Title:  "title",
		Author: "author",
		Page:   0,
	}
	booksPage := model.BooksPage{
		Books: []model.BookPreview{
			{VolumeID: "id1", Title: "title1"},
			{VolumeID: "id2", Title: "title2"},
		},
		HasNextPage: true,
		Page:        request.Page,
		Title:       request.Title,
		Author:      request.Author,
	}

	s.cache.EXPECT().
		GetBooksForPage(ctx, request.Title, request.Author, request.Page).
		Return(booksPage, nil)

	res, err := s.service.GetBooksForPage(ctx, request)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), booksPage, res)
}

func (s *bookFinderServiceSuite) Test_GetBooksForPage_SuccessNotFromCache() {
	ctx := context.Background()
	request := model.BookSearchRequest{
		Title:  "title",
		Author: "author",
		Page:   0,
	}

	query := googlebooks.NewQuery()
	query.Include(request.Title)
	query.Author().Include(request.Author)

	searchResult := googlebooks.SearchResult{
		Kind:       "books#volumes",
		TotalItems: 25,
		Items: []model.Volume{
			{
				Kind: "books#volume",
				ID:   "zyTCAlFPjgYC",
				VolumeInfo: model.VolumeInfo{
					Title:         "title1",
					Authors:       []string{"author1"},
					PublishedDate: "2005-04-26",
				},
			},
			{
				Kind: "books#volume",
				ID:   "yDtCuFHXbAYC",
				VolumeInfo: model.VolumeInfo{
					Title:         "title2",
					Authors:       []string{"author2"},
					PublishedDate: "1999",
				},
			},
		},
	}

	booksPage := model.BooksPage{
		Books: []model.BookPreview{
			{VolumeID: "zyTCAlFPjgYC", Title: "title1", Authors: []string{"author1"}, Year: "2005"},
			{VolumeID: "yDtCuFHXbAYC", Title: "title2", Authors: []string{"author2"}, Year: "1999"},
		},
		HasNextPage: true,
		Page:        request.Page,
		Title:       request.Title,
		Author:      request.Author,
	}

	s.cache.EXPECT().
		GetBooksForPage(ctx, request.Title, request.Author, request.Page).
		Return(model.BooksPage{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		Search(ctx, googlebooks.SearchParams{
			Query:      query,
			StartIndex: 0,
			MaxResults: s.cfg.BooksPerPage,
			PrintType:  googlebooks.PrintTypeBooks,
		}).
		Return(searchResult, nil)

	s.cache.EXPECT().
		SetBooksForPage(context.WithoutCancel(ctx), booksPage).
		Return(nil)

	res, err := s.service.GetBooksForPage(ctx, request)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), booksPage, res)
}

func (s *bookFinderServiceSuite) Test_GetBooksForPage_NotFoundErr() {
	ctx := context.Background()
	request := model.BookSearchRequest{
		Title: "title",
		Page:  0,
	}

	s.cache.EXPECT().
		GetBooksForPage(ctx, request.Title, request.Author, request.Page).
		Return(model.BooksPage{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		Search(ctx, gomock.Any()).
		Return(googlebooks.SearchResult{Kind: "books#volumes", TotalItems: 0}, nil)

	_, err := s.service.GetBooksForPage(ctx, request)

	assert.Equal(s.T(), service.ErrNotFound, err)
}

func (s *bookFinderServiceSuite) Test_GetBooksForPage_ApiErr() {
	ctx := context.Background()
	request := model.BookSearchRequest{
		Title: "title",
		Page:  0,
	}
	apiErr := errors.New("api error")

	s.cache.EXPECT().
		GetBooksForPage(ctx, request.Title, request.Author, request.Page).
		Return(model.BooksPage{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		Search(ctx, gomock.Any()).
		Return(googlebooks.SearchResult{}, apiErr)

	_, err := s.service.GetBooksForPage(ctx, request)

	assert.ErrorIs(s.T(), err, apiErr)
}

func (s *bookFinderServiceSuite) Test_GetBookDetails_SuccessFromCache() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := model.Volume{
		Kind: "books#volume",
		ID:   volumeID,
		VolumeInfo: model.VolumeInfo{
			Title: "title",
		},
	}

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	res, err := s.service.GetBookDetails(ctx, volumeID)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), volume, res)
}

func (s *bookFinderServiceSuite) Test_GetBookDetails_SuccessFromApi() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := model.Volume{
		Kind: "books#volume",
		ID:   volumeID,
		VolumeInfo: model.VolumeInfo{
			Title: "title",
		},
	}

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(model.Volume{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		VolumeByID(ctx, volumeID).
		Return(volume, nil)

	s.cache.EXPECT().
		SetVolume(context.WithoutCancel(ctx), volume).
		Return(nil)

	res, err := s.service.GetBookDetails(ctx, volumeID)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), volume, res)
}

func (s *bookFinderServiceSuite) Test_GetBookDetails_NotFoundErr() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(model.Volume{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		VolumeByID(ctx, volumeID).
		Return(model.Volume{}, googlebooks.ErrVolumeNotFound)

	_, err := s.service.GetBookDetails(ctx, volumeID)

	assert.Equal(s.T(), service.ErrNotFound, err)
}

func freeEbookVolume(volumeID string) model.Volume {
	return model.Volume{
		Kind: "books#volume",
		ID:   volumeID,
		VolumeInfo: model.VolumeInfo{
			Title:   "Flatland",
			Authors: []string{"Edwin A. Abbott"},
		},
		AccessInfo: model.AccessInfo{
			PublicDomain: true,
			Epub: model.FormatAccess{
				IsAvailable:  true,
				DownloadLink: "https://books.google.com/books/download/Flatland.epub",
			},
		},
	}
}

func bothFormatsVolume(volumeID string) model.Volume {
	volume := freeEbookVolume(volumeID)
	volume.AccessInfo.Pdf = model.FormatAccess{
		IsAvailable:  true,
		DownloadLink: "https://books.google.com/books/download/Flatland.pdf",
	}
	return volume
}

func (s *bookFinderServiceSuite) Test_DownloadBook_Success() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := freeEbookVolume(volumeID)
	fileBytes := []byte("book content")
	fileName := "Flatland.epub"

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	s.fileDownloader.EXPECT().
		Download(ctx, volume.AccessInfo.Epub.DownloadLink, "Flatland.epub").
		Return(fileBytes, fileName, nil)

	resFileBytes, resFileName, err := s.service.DownloadBook(ctx, volumeID, "")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), fileBytes, resFileBytes)
	assert.Equal(s.T(), fileName, resFileName)
}

func (s *bookFinderServiceSuite) Test_DownloadBook_PdfFormat() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := bothFormatsVolume(volumeID)
	fileBytes := []byte("book content")

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	s.fileDownloader.EXPECT().
		Download(ctx, volume.AccessInfo.Pdf.DownloadLink, "Flatland.pdf").
		Return(fileBytes, "Flatland.pdf", nil)

	resFileBytes, resFileName, err := s.service.DownloadBook(ctx, volumeID, "pdf")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), fileBytes, resFileBytes)
	assert.Equal(s.T(), "Flatland.pdf", resFileName)
}

func (s *bookFinderServiceSuite) Test_DownloadBook_FormatNotAvailableErr() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := freeEbookVolume(volumeID)

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	_, _, err := s.service.DownloadBook(ctx, volumeID, "pdf")

	assert.Equal(s.T(), service.ErrNoDownload, err)
}

func (s *bookFinderServiceSuite) Test_DownloadBook_NoDownloadErr() {
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := model.Volume{
		Kind: "books#volume",
		ID:   volumeID,
		VolumeInfo: model.VolumeInfo{
			Title: "title",
		},
	}

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	_, _, err := s.service.DownloadBook(ctx, volumeID, "")

	assert.Equal(s.T(), service.ErrNoDownload, err)
}

func (s *bookFinderServiceSuite) Test_SendBookToKindle_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "test@gmail.com"
	volumeID := "zyTCAlFPjgYC"
	volume := freeEbookVolume(volumeID)
	fileBytes := []byte("book content")
	fileName := "Flatland.epub"

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return(email, nil)

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	s.fileDownloader.EXPECT().
		Download(ctx, volume.AccessInfo.Epub.DownloadLink, "Flatland.epub").
		Return(fileBytes, fileName, nil)

	s.mailer.EXPECT().
		SendFile(ctx, email, fileName, fileBytes).
		Return(nil)

	err := s.service.SendBookToKindle(ctx, volumeID, chatID)

	assert.Nil(s.T(), err)
}

func (s *bookFinderServiceSuite) Test_SendBookToKindle_EmailNotLinkedErr() {
	var chatID int64 = 1
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	expectedErr := service.ErrEmailNotLinked

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return("", repository.ErrNoRows)

	err := s.service.SendBookToKindle(ctx, volumeID, chatID)

	assert.Equal(s.T(), expectedErr, err)
}

func (s *bookFinderServiceSuite) Test_SendBookToKindle_BookNotFoundErr() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "test@gmail.com"
	volumeID := "zyTCAlFPjgYC"

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return(email, nil)

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(model.Volume{}, cache.ErrNotFound)

	s.booksApi.EXPECT().
		VolumeByID(ctx, volumeID).
		Return(model.Volume{}, googlebooks.ErrVolumeNotFound)

	err := s.service.SendBookToKindle(ctx, volumeID, chatID)

	assert.Equal(s.T(), service.ErrNotFound, err)
}

func (s *bookFinderServiceSuite) Test_SendBookToKindle_DownloadErr() {
	var chatID int64 = 1
	ctx := context.Background()
	email := "test@gmail.com"
	volumeID := "zyTCAlFPjgYC"
	volume := freeEbookVolume(volumeID)
	fileDownloaderErr := errors.New("fileDownloaderErr")
	expectedErr := fmt.Errorf("download book error: %w", fileDownloaderErr)

	s.repo.EXPECT().
		GetEmailByChatId(ctx, chatID).
		Return(email, nil)

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	s.fileDownloader.EXPECT().
		Download(ctx, volume.AccessInfo.Epub.DownloadLink, "Flatland.epub").
		Return(nil, "", fileDownloaderErr)

	err := s.service.SendBookToKindle(ctx, volumeID, chatID)

	assert.Equal(s.T(), expectedErr, err)
}

func (s *bookFinderServiceSuite) Test_UploadFileToCloud_Success() {
	ctx := context.Background()
	reader := bytes.NewReader([]byte("file content"))
	fileName := "fileName"
	downloadLink := "downloadLink"

	s.cloudStorageApi.EXPECT().
		UploadFile(ctx, reader, fileName).
		Return(downloadLink, nil)

	res, err := s.service.UploadFileToCloud(ctx, reader, fileName)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), downloadLink, res)
}

func (s *bookFinderServiceSuite) Test_AddFavorite_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"
	volume := freeEbookVolume(volumeID)

	s.cache.EXPECT().
		GetVolume(ctx, volumeID).
		Return(volume, nil)

	s.repo.EXPECT().
		AddFavorite(ctx, chatID, model.FavoriteBook{
			VolumeID: volumeID,
			Title:    "Flatland",
			Authors:  "Edwin A. Abbott",
		}).
		Return(nil)

	err := s.service.AddFavorite(ctx, chatID, volumeID)

	assert.Nil(s.T(), err)
}

func (s *bookFinderServiceSuite) Test_DeleteFavorite_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	volumeID := "zyTCAlFPjgYC"

	s.repo.EXPECT().
		DeleteFavorite(ctx, chatID, volumeID).
		Return(nil)

	err := s.service.DeleteFavorite(ctx, chatID, volumeID)

	assert.Nil(s.T(), err)
}

func (s *bookFinderServiceSuite) Test_GetFavorites_Success() {
	var chatID int64 = 1
	ctx := context.Background()
	books := []model.FavoriteBook{
		{VolumeID: "zyTCAlFPjgYC", Title: "Flatland", Authors: "Edwin A. Abbott"},
	}

	s.repo.EXPECT().
		GetFavoritesByChatId(ctx, chatID).
		Return(books, nil)

	res, err := s.service.GetFavorites(ctx, chatID)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), books, res)
}

func (s *bookFinderServiceSuite) Test_GetFavorites_NotFoundErr() {
	var chatID int64 = 1
	ctx := context.Background()

	s.repo.EXPECT().
		GetFavoritesByChatId(ctx, chatID).
		Return(nil, repository.ErrNoRows)

	_, err := s.service.GetFavorites(ctx, chatID)

	assert.Equal(s.T(), service.ErrNotFound, err)
}

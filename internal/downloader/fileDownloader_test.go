package downloader

import (
	"context"
	"testing"

	"gbooks_tgbot/config"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type fileDownloaderSuite struct {
	suite.Suite

	downloader *FileDownloader
}

func TestFileDownloaderSuite(t *testing.T) {
	suite.Run(t, new(fileDownloaderSuite))
}

func (s *fileDownloaderSuite) SetupSuite() {
	s.downloader = NewFileDownloader(&config.Config{})
	gock.InterceptClient(s.downloader.client)
}

func (s *fileDownloaderSuite) TearDownTest() {
	gock.Off()
}

func (s *fileDownloaderSuite) Test_Download_FilenameFromHeader() {
	ctx := context.Background()
	fileContent := "book content"

	gock.New("https://books.google.com").
		Get("/books/download/Flatland.epub").
		Reply(200).
		SetHeader("Content-Disposition", `attachment; filename="Flatland.epub"`).
		BodyString(fileContent)

	fileBytes, filename, err := s.downloader.Download(ctx, "https://books.google.com/books/download/Flatland.epub", "fallback.epub")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []byte(fileContent), fileBytes)
	assert.Equal(s.T(), "Flatland.epub", filename)
}

func (s *fileDownloaderSuite) Test_Download_FallbackFilename() {
	ctx := context.Background()
	fileContent := "book content"

	gock.New("https://books.google.com").
		Get("/books/download/Flatland.epub").
		Reply(200).
		BodyString(fileContent)

	fileBytes, filename, err := s.downloader.Download(ctx, "https://books.google.com/books/download/Flatland.epub", "fallback.epub")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []byte(fileContent), fileBytes)
	assert.Equal(s.T(), "fallback.epub", filename)
}

func (s *fileDownloaderSuite) Test_Download_StatusNotOkErr() {
	ctx := context.Background()

	gock.New("https://books.google.com").
		Get("/books/download/Flatland.epub").
		Reply(403)

	_, _, err := s.downloader.Download(ctx, "https://books.google.com/books/download/Flatland.epub", "fallback.epub")

	assert.NotNil(s.T(), err)
}

func (s *fileDownloaderSuite) Test_Download_EmptyFilenameErr() {
	ctx := context.Background()

	gock.New("https://books.google.com").
		Get("/books/download/Flatland.epub").
		Reply(200).
		BodyString("book content")

	_, _, err := s.downloader.Download(ctx, "https://books.google.com/books/download/Flatland.epub", "")

	assert.NotNil(s.T(), err)
}

package googlebooks

import (
	"context"
	"testing"
	"time"

	"gbooks_tgbot/config"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type clientSuite struct {
	suite.Suite

	cfg    *config.Config
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupSuite() {
	s.cfg = &config.Config{
		GoogleBooks: config.GoogleBooks{
			BaseUrl:      "https://www.googleapis.com",
			Timeout:      5 * time.Second,
			MaxPerSearch: 20,
		},
	}
	s.client = NewClient(s.cfg)
	gock.InterceptClient(s.client.httpClient)
}

func (s *clientSuite) TearDownTest() {
	gock.Off()
}

func (s *clientSuite) Test_Search_Success() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes").
		MatchParam("q", `\+flowers`).
		MatchParam("startIndex", "0").
		MatchParam("maxResults", "10").
		Reply(200).
		BodyString(searchVolumesResponse)

	query := NewQuery()
	query.Include("flowers")

	result, err := s.client.Search(ctx, SearchParams{
		Query:      query,
		StartIndex: 0,
		MaxResults: 10,
	})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "books#volumes", result.Kind)
	assert.Equal(s.T(), 128, result.TotalItems)
	assert.Len(s.T(), result.Items, 2)
	assert.Equal(s.T(), "zyTCAlFPjgYC", result.Items[0].ID)
	assert.Equal(s.T(), "The Google Story", result.Items[0].VolumeInfo.Title)
	assert.Equal(s.T(), []string{"David A. Vise", "Mark Malseed"}, result.Items[0].VolumeInfo.Authors)
	assert.Equal(s.T(), "2005", result.Items[0].VolumeInfo.PublishedYear())
	assert.True(s.T(), result.Items[1].AccessInfo.Epub.IsAvailable)
	assert.True(s.T(), gock.IsDone())
}

func (s *clientSuite) Test_Search_WithOptions() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes").
		MatchParam("filter", "free-ebooks").
		MatchParam("printType", "books").
		MatchParam("orderBy", "newest").
		MatchParam("projection", "lite").
		MatchParam("langRestrict", "en").
		Reply(200).
		BodyString(searchVolumesResponse)

	query := NewQuery()
	query.Title().Include("flatland")

	_, err := s.client.Search(ctx, SearchParams{
		Query:        query,
		Filter:       FilterFreeEbooks,
		PrintType:    PrintTypeBooks,
		OrderBy:      OrderByNewest,
		Projection:   ProjectionLite,
		LangRestrict: "en",
	})

	assert.Nil(s.T(), err)
	assert.True(s.T(), gock.IsDone())
}

func (s *clientSuite) Test_Search_MaxResultsClamped() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes").
		MatchParam("maxResults", "40").
		Reply(200).
		BodyString(searchVolumesResponse)

	query := NewQuery()
	query.Include("flowers")

	_, err := s.client.Search(ctx, SearchParams{
		Query:      query,
		MaxResults: 100,
	})

	assert.Nil(s.T(), err)
	assert.True(s.T(), gock.IsDone())
}

func (s *clientSuite) Test_Search_DefaultMaxResultsFromConfig() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes").
		MatchParam("maxResults", "20").
		Reply(200).
		BodyString(searchVolumesResponse)

	query := NewQuery()
	query.Include("flowers")

	_, err := s.client.Search(ctx, SearchParams{Query: query})

	assert.Nil(s.T(), err)
	assert.True(s.T(), gock.IsDone())
}

func (s *clientSuite) Test_Search_EmptyQueryErr() {
	ctx := context.Background()

	_, err := s.client.Search(ctx, SearchParams{Query: NewQuery()})

	assert.ErrorIs(s.T(), err, ErrEmptyQuery)
}

func (s *clientSuite) Test_Search_NilQueryErr() {
	ctx := context.Background()

	_, err := s.client.Search(ctx, SearchParams{})

	assert.ErrorIs(s.T(), err, ErrEmptyQuery)
}

func (s *clientSuite) Test_Search_InvalidOptionErr() {
	ctx := context.Background()

	query := NewQuery()
	query.Include("flowers")

	_, err := s.client.Search(ctx, SearchParams{
		Query:  query,
		Filter: Filter("partial-ebooks"),
	})

	assert.ErrorIs(s.T(), err, ErrInvalidOption)
}

func (s *clientSuite) Test_Search_NegativeStartIndexErr() {
	ctx := context.Background()

	query := NewQuery()
	query.Include("flowers")

	_, err := s.client.Search(ctx, SearchParams{
		Query:      query,
		StartIndex: -1,
	})

	assert.NotNil(s.T(), err)
}

func (s *clientSuite) Test_Search_ApiErr() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes").
		Reply(500).
		BodyString(apiErrorResponse)

	query := NewQuery()
	query.Include("flowers")

	_, err := s.client.Search(ctx, SearchParams{Query: query})

	var apiErr *APIError
	assert.ErrorAs(s.T(), err, &apiErr)
	assert.Equal(s.T(), 500, apiErr.StatusCode)
	assert.Equal(s.T(), "Backend Error", apiErr.Message)
}

func (s *clientSuite) Test_VolumeByID_Success() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes/zyTCAlFPjgYC").
		Reply(200).
		BodyString(volumeResponse)

	volume, err := s.client.VolumeByID(ctx, "zyTCAlFPjgYC")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "books#volume", volume.Kind)
	assert.Equal(s.T(), "zyTCAlFPjgYC", volume.ID)
	assert.Equal(s.T(), "The Google Story", volume.VolumeInfo.Title)
	assert.Equal(s.T(), "Random House Digital, Inc.", volume.VolumeInfo.Publisher)
	assert.True(s.T(), gock.IsDone())
}

func (s *clientSuite) Test_VolumeByID_InvalidLengthErr() {
	ctx := context.Background()

	_, err := s.client.VolumeByID(ctx, "tooShort")

	assert.ErrorIs(s.T(), err, ErrInvalidVolumeID)
}

func (s *clientSuite) Test_VolumeByID_InvalidCharErr() {
	ctx := context.Background()

	_, err := s.client.VolumeByID(ctx, "zyTCAlF jgYC")

	assert.ErrorIs(s.T(), err, ErrInvalidVolumeID)
}

func (s *clientSuite) Test_VolumeByID_NotFoundErr() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes/zyTCAlFPjgYC").
		Reply(404).
		BodyString(`{"error": {"code": 404, "message": "The volume ID could not be found."}}`)

	_, err := s.client.VolumeByID(ctx, "zyTCAlFPjgYC")

	assert.ErrorIs(s.T(), err, ErrVolumeNotFound)
}

func (s *clientSuite) Test_VolumeByID_WrongKindErr() {
	ctx := context.Background()

	gock.New(s.cfg.GoogleBooks.BaseUrl).
		Get("/books/v1/volumes/zyTCAlFPjgYC").
		Reply(200).
		BodyString(wrongKindResponse)

	_, err := s.client.VolumeByID(ctx, "zyTCAlFPjgYC")

	assert.ErrorIs(s.T(), err, ErrInvalidVolumeData)
}

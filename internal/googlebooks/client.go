package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"gbooks_tgbot/config"
	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/utils"
)

// maxResultsLimit - максимум maxResults, который принимает volumes API.
const maxResultsLimit = 40

const volumeIDLen = 12

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	httpClient := &http.Client{Timeout: cfg.GoogleBooks.Timeout}

	if cfg.ProxyUrl != "" {
		proxyURL, err := url.Parse(cfg.ProxyUrl)
		if err != nil {
			slog.Error("failed to parse proxy url", slog.String("proxyUrl", cfg.ProxyUrl), slog.String("err", err.Error()))
		} else {
			httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &Client{cfg: cfg, httpClient: httpClient}
}

type SearchParams struct {
	Query        *Query
	StartIndex   int
	MaxResults   int
	Filter       Filter
	PrintType    PrintType
	OrderBy      OrderBy
	Projection   Projection
	LangRestrict string
}

func (p SearchParams) validate() error {
	if p.Query == nil || p.Query.Empty() {
		return ErrEmptyQuery
	}
	if p.StartIndex < 0 {
		return errors.New("negative startIndex")
	}
	if p.Filter != "" {
		if err := p.Filter.Validate(); err != nil {
			return err
		}
	}
	if p.PrintType != "" {
		if err := p.PrintType.Validate(); err != nil {
			return err
		}
	}
	if p.OrderBy != "" {
		if err := p.OrderBy.Validate(); err != nil {
			return err
		}
	}
	if p.Projection != "" {
		if err := p.Projection.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type SearchResult struct {
	Kind       string         `json:"kind"`
	TotalItems int            `json:"totalItems"`
	Items      []model.Volume `json:"items"`
}

// Search выполняет GET /books/v1/volumes. Опции проверяются до запроса.
// Если maxResults не задан - берется из конфига, в любом случае урезается
// до лимита API.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	op := "googlebooks.Client.Search"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := params.validate(); err != nil {
		return SearchResult{}, err
	}

	values := url.Values{}
	values.Set("q", params.Query.Encode())
	values.Set("startIndex", strconv.Itoa(params.StartIndex))

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = c.cfg.GoogleBooks.MaxPerSearch
	}
	if maxResults > maxResultsLimit {
		maxResults = maxResultsLimit
	}
	if maxResults > 0 {
		values.Set("maxResults", strconv.Itoa(maxResults))
	}

	if params.Filter != "" {
		values.Set("filter", string(params.Filter))
	}
	if params.PrintType != "" {
		values.Set("printType", string(params.PrintType))
	}
	if params.OrderBy != "" {
		values.Set("orderBy", string(params.OrderBy))
	}
	if params.Projection != "" {
		values.Set("projection", string(params.Projection))
	}
	if params.LangRestrict != "" {
		values.Set("langRestrict", params.LangRestrict)
	}
	c.setCommonParams(values)

	fullURL := c.cfg.GoogleBooks.BaseUrl + "/books/v1/volumes?" + values.Encode()

	slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", fullURL))

	var result SearchResult
	if err := c.getJSON(ctx, fullURL, &result); err != nil {
		slog.Error(
			"search request failed",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", fullURL),
			slog.String("err", err.Error()),
		)
		return SearchResult{}, err
	}

	return result, nil
}

// VolumeByID выполняет GET /books/v1/volumes/{id}.
func (c *Client) VolumeByID(ctx context.Context, volumeID string) (model.Volume, error) {
	op := "googlebooks.Client.VolumeByID"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := validateVolumeID(volumeID); err != nil {
		return model.Volume{}, err
	}

	values := url.Values{}
	c.setCommonParams(values)

	fullURL := c.cfg.GoogleBooks.BaseUrl + "/books/v1/volumes/" + url.PathEscape(volumeID)
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", fullURL))

	var volume model.Volume
	if err := c.getJSON(ctx, fullURL, &volume); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			slog.Warn("volume not found", slog.String("op", op), slog.String("rqID", rqID), slog.String("volumeID", volumeID))
			return model.Volume{}, ErrVolumeNotFound
		}
		slog.Error(
			"volume request failed",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("volumeID", volumeID),
			slog.String("err", err.Error()),
		)
		return model.Volume{}, err
	}

	if volume.Kind != "books#volume" {
		return model.Volume{}, fmt.Errorf("%w: unexpected kind %q", ErrInvalidVolumeData, volume.Kind)
	}

	return volume, nil
}

func (c *Client) setCommonParams(values url.Values) {
	if c.cfg.GoogleBooks.ApiKey != "" {
		values.Set("key", c.cfg.GoogleBooks.ApiKey)
	}
	if c.cfg.GoogleBooks.Country != "" {
		values.Set("country", c.cfg.GoogleBooks.Country)
	}
}

func (c *Client) getJSON(ctx context.Context, fullURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: decodeAPIErrMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIErrMessage(r io.Reader) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Error.Message
}

// validateVolumeID проверяет что id - 12 печатных ASCII символов без пробелов.
func validateVolumeID(volumeID string) error {
	if len(volumeID) != volumeIDLen {
		return ErrInvalidVolumeID
	}
	for _, r := range volumeID {
		if r <= ' ' || r > '~' {
			return fmt.Errorf("%w: contains invalid char", ErrInvalidVolumeID)
		}
	}
	return nil
}

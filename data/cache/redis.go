package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"

	"gbooks_tgbot/config"
	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("not found in cache")

type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) createBooksPageKey(title, author string, page int) string {
	// нормализуем регистр и пробелы, чтобы одинаковые запросы попадали в один ключ
	title = strings.ToLower(strings.Join(strings.Fields(title), " "))
	author = strings.ToLower(strings.Join(strings.Fields(author), " "))

	// title и author могут содержать любые символы, поэтому в ключ кладем хэш пары
	h := fnv.New64a()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(author))

	return fmt.Sprintf("search:%x:page:%d", h.Sum64(), page)
}

func (r *RedisCache) createVolumeKey(volumeID string) string {
	return fmt.Sprintf("volume:%s", volumeID)
}

func (r *RedisCache) GetBooksForPage(ctx context.Context, title, author string, page int) (model.BooksPage, error) {
	op := "RedisCache.GetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createBooksPageKey(title, author, page)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.BooksPage{}, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.BooksPage{}, err
	}

	booksPage := model.BooksPage{}
	if err = json.Unmarshal([]byte(res), &booksPage); err != nil {
		slog.Error("can't unmarshall books page", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.BooksPage{}, errors.New("can't unmarshall books page")
	}

	return booksPage, nil
}

func (r *RedisCache) SetBooksForPage(ctx context.Context, booksPage model.BooksPage) error {
	op := "RedisCache.SetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createBooksPageKey(booksPage.Title, booksPage.Author, booksPage.Page)

	jsonData, err := json.Marshal(booksPage)
	if err != nil {
		slog.Error("can't marshall books page", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.Any("booksPage", booksPage))
		return errors.New("can't marshall books page")
	}

	if _, err = r.redis.Set(ctx, key, jsonData, r.cfg.CacheExpiration).Result(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}

func (r *RedisCache) GetVolume(ctx context.Context, volumeID string) (model.Volume, error) {
	op := "RedisCache.GetVolume"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createVolumeKey(volumeID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Volume{}, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.Volume{}, err
	}

	volume := model.Volume{}
	if err = json.Unmarshal([]byte(res), &volume); err != nil {
		slog.Error("can't unmarshall volume", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.Volume{}, errors.New("can't unmarshall volume")
	}

	return volume, nil
}

func (r *RedisCache) SetVolume(ctx context.Context, volume model.Volume) error {
	op := "RedisCache.SetVolume"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createVolumeKey(volume.ID)

	jsonData, err := json.Marshal(volume)
	if err != nil {
		slog.Error("can't marshall volume", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("can't marshall volume")
	}

	if _, err = r.redis.Set(ctx, key, jsonData, r.cfg.CacheExpiration).Result(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}

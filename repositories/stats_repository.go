package repositories

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// platformStatsKey is the single well-known hash holding the platform
// counters. HIncrBy keeps increments atomic across service instances;
// a missing hash reads as all-zero, which matches lazy creation.
const platformStatsKey = "platform:stats"

const (
	fieldTotalUploads   = "total_uploads"
	fieldTotalDownloads = "total_downloads"
	fieldActiveUsers    = "active_users"
)

type RedisStatsRepository struct {
	client *redis.Client
}

func NewRedisStatsRepository(client *redis.Client) *RedisStatsRepository {
	return &RedisStatsRepository{client: client}
}

func (r *RedisStatsRepository) Get(ctx context.Context) (PlatformStats, error) {
	values, err := r.client.HGetAll(ctx, platformStatsKey).Result()
	if err != nil {
		return PlatformStats{}, err
	}

	parse := func(field string) int64 {
		v, _ := strconv.ParseInt(values[field], 10, 64)
		return v
	}

	return PlatformStats{
		TotalUploads:   parse(fieldTotalUploads),
		TotalDownloads: parse(fieldTotalDownloads),
		ActiveUsers:    parse(fieldActiveUsers),
	}, nil
}

func (r *RedisStatsRepository) IncrTotalUploads(ctx context.Context, delta int64) error {
	return r.client.HIncrBy(ctx, platformStatsKey, fieldTotalUploads, delta).Err()
}

func (r *RedisStatsRepository) IncrTotalDownloads(ctx context.Context, delta int64) error {
	return r.client.HIncrBy(ctx, platformStatsKey, fieldTotalDownloads, delta).Err()
}

func (r *RedisStatsRepository) IncrActiveUsers(ctx context.Context, delta int64) error {
	return r.client.HIncrBy(ctx, platformStatsKey, fieldActiveUsers, delta).Err()
}

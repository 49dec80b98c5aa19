package repositories

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type GormRepositories struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewGormRepositories(db *gorm.DB, redisClient *redis.Client) *GormRepositories {
	return &GormRepositories{db: db, redis: redisClient}
}

func (r *GormRepositories) BuildContainer() Container {
	return Container{
		Users:     NewGormUserRepository(r.db),
		Documents: NewGormDocumentRepository(r.db),
		Subjects:  NewGormSubjectRepository(r.db),
		Majors:    NewGormMajorRepository(r.db),
		Logs:      NewGormLogRepository(r.db),
		Stats:     NewRedisStatsRepository(r.redis),
	}
}

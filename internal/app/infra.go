package app

import (
	"context"
	"database/sql"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pzhuhenong/teriteri-backend/internal/cache"
	"github.com/pzhuhenong/teriteri-backend/internal/config"
	"github.com/pzhuhenong/teriteri-backend/internal/db"
	"github.com/pzhuhenong/teriteri-backend/internal/logger"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *goredis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunAccountsMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
	}, nil
}

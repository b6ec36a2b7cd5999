package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/pzhuhenong/teriteri-backend/internal/account"
	"github.com/pzhuhenong/teriteri-backend/internal/auth"
	"github.com/pzhuhenong/teriteri-backend/internal/cache"
	"github.com/pzhuhenong/teriteri-backend/internal/config"
	"github.com/pzhuhenong/teriteri-backend/internal/handler"
	"github.com/pzhuhenong/teriteri-backend/internal/middleware"
	"github.com/pzhuhenong/teriteri-backend/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	accountStore := account.NewPostgresStore(infra.DB)
	accountManager := account.NewManager(accountStore)

	redisCache := cache.NewRedisCache(infra.Redis)

	tokenIssuer := auth.NewJWTIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	verifier := session.NewStoreVerifier(accountStore)

	// snapshot TTL matches the token lifetime
	sessionManager := session.NewManager(
		verifier,
		accountStore,
		redisCache,
		tokenIssuer,
		cfg.ProfileCacheTTL,
		cfg.TokenTTL,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenIssuer)

	h := handler.NewHandler(accountManager, sessionManager)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	h.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

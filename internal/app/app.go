package app

import (
	"net/http"

	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/connection"
	"go-leave/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires infrastructure, modules and routes onto router. The
// returned func releases external connections.
func BuildApp(router *gin.Engine, cfg *config.Configuration, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 1. Optional infrastructure
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
		if err != nil {
			return func() {}, err
		}
		rdb = client
		closers = append(closers, func() { _ = client.Close() })
		log.Info("redis idempotency enabled")
	}

	var publisher leave.EventPublisher
	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.MaxRetries)
		if err != nil {
			cleanup()
			return func() {}, err
		}
		publisher = leave.NewKafkaEventPublisher(writer, cfg.Kafka.LeaveTopic)
		closers = append(closers, func() { _ = writer.Close() })
		log.Info("kafka leave events enabled", zap.String("topic", cfg.Kafka.LeaveTopic))
	}

	// 2. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		metrics.InstrumentHTTP(),
		middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateBurst),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 3. Modules & routes
	if err := registerModules(router, cfg, rdb, publisher, logger); err != nil {
		cleanup()
		return func() {}, err
	}

	return cleanup, nil
}

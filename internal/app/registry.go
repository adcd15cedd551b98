package app

import (
	"context"

	"go-leave/internal/config"
	"go-leave/internal/domain"
	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Configuration,
	rdb *redis.Client,
	publisher leave.EventPublisher,
	logger *zap.Logger,
) error {
	// --- Stores ---
	employeeRegistry := employee.NewRegistry()
	leaveLedger := leave.NewLedger(counter.NewRepository())

	if err := seedEmployees(context.Background(), employeeRegistry, cfg, logger); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRegistry, logger)
	leaveService := leave.NewServiceWithPublisher(employeeRegistry, leaveLedger, publisher, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)

	// --- Write middleware ---
	writes := []gin.HandlerFunc{middleware.RateLimitByActor(2, 5)}
	if rdb != nil {
		writes = append(writes, middleware.Idempotency(rdb, cfg.Redis.IdempotencyTTL))
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, writes...)
		leave.RegisterRoutes(api, leaveHandler, writes...)
	}

	return nil
}

func seedEmployees(ctx context.Context, registry employee.Registry, cfg *config.Configuration, logger *zap.Logger) error {
	seeds, err := cfg.Seeds()
	if err != nil {
		return err
	}

	for _, s := range seeds {
		balances := make(map[domain.Category]int, len(s.Balances))
		for name, days := range s.Balances {
			c, err := domain.ParseCategory(name)
			if err != nil {
				return err
			}
			balances[c] = days
		}
		if _, err := registry.Register(ctx, s.ID, s.FullName, balances); err != nil {
			return err
		}
	}

	logger.Named("app").Info("employees seeded", zap.Int("count", len(seeds)))
	return nil
}

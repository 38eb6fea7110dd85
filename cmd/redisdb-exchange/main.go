package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	config "github.com/davicafu/redisdb-exchange/internal/config"
	exchangeApp "github.com/davicafu/redisdb-exchange/internal/exchange/application"
	exchangeHttp "github.com/davicafu/redisdb-exchange/internal/exchange/infra/inbound/http"
	exchangeEvents "github.com/davicafu/redisdb-exchange/internal/exchange/infra/outbound/events"
	"github.com/davicafu/redisdb-exchange/internal/exchange/infra/outbound/redisdb"
	"github.com/davicafu/redisdb-exchange/pkg/identifier"
	"github.com/davicafu/redisdb-exchange/pkg/logger"
	"github.com/davicafu/redisdb-exchange/pkg/utils"
)

// ---------------- Main ----------------
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Logger()
	defer log.Sync() // flush buffers al salir

	ctx := context.Background()

	// ---------------- Redis ----------------
	rdb := redisdb.NewClient(cfg)
	defer rdb.Close()

	err = utils.Retry(ctx, cfg.ConnectAttempts, cfg.ConnectDelay, func() error {
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("⚠️ Redis no disponible, reintentando", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	log.Info("✅ Redis conectado", zap.String("addr", cfg.RedisAddr))

	// ---------------- Exchange ---------------
	sender := identifier.Static(cfg.SenderID)
	publisher := exchangeEvents.NewRedisPublisher(sender.Identifier(), cfg.Channel, redisdb.NewConnection(rdb), log)
	exchangeService := exchangeApp.NewExchangeService(publisher, log)

	log.Info("🚀 Exchange publisher listo",
		zap.String("channel", cfg.Channel),
		zap.String("sender_id", sender.Identifier()),
	)

	// ---------------- HTTP ----------------
	router := gin.Default()
	exchangeHttp.RegisterExchangeRoutes(router, exchangeHttp.NewExchangeHandler(exchangeService, log))

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// @title        HopeBridge API
// @version      1.0
// @description  HopeBridge NGO 官網後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hopebridge/internal/cache"
	"hopebridge/internal/config"
	"hopebridge/internal/database"
	"hopebridge/internal/mailer"
	"hopebridge/internal/router"
	"hopebridge/internal/schema"
	"hopebridge/internal/service"
	"hopebridge/internal/stats"
	"hopebridge/internal/store"
	"hopebridge/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	_ "hopebridge/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// flushSpec 控制計數器批次寫回的頻率。
const flushSpec = "@every 1m"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig     = config.Load
	newPgxPool     = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool  = worker.NewPool
	exitFunc       = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	boot := schema.New(db)
	if err := seedAdmin(context.Background(), db, boot, cfg); err != nil {
		// handlers re-run the bootstrap lazily, first request retries
		log.Printf("seed admin: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	m := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		To:       cfg.MailTo,
	}, wp)

	buf := stats.NewBuffer(db)
	cr := cron.New()
	if err := buf.Schedule(cr, flushSpec); err != nil {
		return fmt.Errorf("排程計數器寫回失敗: %v", err)
	}
	cr.Start()
	defer cr.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.IsDevelopment()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, boot, buf, m, !cfg.IsDevelopment())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr())
}

// seedAdmin creates admin_users and the bootstrap account so the first
// login works on an empty database. Skipped when ADMIN_PASSWORD is unset.
func seedAdmin(ctx context.Context, db database.DB, boot *schema.Bootstrapper, cfg *config.Config) error {
	if err := boot.EnsureCore(ctx); err != nil {
		return err
	}
	if cfg.AdminPassword == "" {
		return nil
	}
	hash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return store.SeedAdminUser(ctx, db, cfg.AdminEmail, hash)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

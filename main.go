package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	attendanceScheduler "hrms_backend/internals/features/attendance/sessions/scheduler"
	authScheduler "hrms_backend/internals/features/users/auth/scheduler"
	helper "hrms_backend/internals/helpers"
	middlewares "hrms_backend/internals/middlewares"
	routes "hrms_backend/internals/route"
	"hrms_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	attCfg, err := configs.LoadAttendanceConfig()
	if err != nil {
		log.Fatalf("[ERROR] konfigurasi absensi: %v", err)
	}
	log.Printf("[INFO] Absensi: offset %s, shift %d menit", attCfg.UTCOffset, attCfg.StandardShiftMinutes)

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromAppError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("[ERROR] migrasi: %v", err)
		}
	}
	if configs.DBSeed {
		seeds.RunAllSeeds(database.DB)
	}
	database.WarmUpQueries()

	// scheduler setelah DB siap
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := authScheduler.RegisterBlacklistCleanup(c, database.DB, configs.BlacklistTTLDays); err != nil {
		log.Printf("[ERROR] cron blacklist: %v", err)
	}
	if _, err := attendanceScheduler.RegisterStaleSessionReport(c, database.DB, attCfg); err != nil {
		log.Printf("[ERROR] cron sesi basi (%s): %v", attCfg.StaleReportCron, err)
	}
	c.Start()

	routes.SetupRoutes(app, database.DB, attCfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + stop cron + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-c.Stop().Done()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

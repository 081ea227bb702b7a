package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/config"
	dbpkg "github.com/SmartCafeteriaHQ/cafeteria-api/internal/db"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/mailer"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/otp"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/routes"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	mail := mailer.NewSMTP(cfg)

	var otpStore otp.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		otpStore = otp.NewRedisStore(rdb)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory OTP store")
		otpStore = otp.NewMemoryStore()
	}

	disk, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.StorageDriver == "local" || cfg.StorageDriver == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, db, cfg, mail, otpStore, disk)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

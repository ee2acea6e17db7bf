package main

import (
	"os"
	"path/filepath"

	"github.com/rachelL-tech/taipei-day-trip/internal/config"
	"github.com/rachelL-tech/taipei-day-trip/internal/handler"
	"github.com/rachelL-tech/taipei-day-trip/internal/logger"
	"github.com/rachelL-tech/taipei-day-trip/internal/repository"
	"github.com/rachelL-tech/taipei-day-trip/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	cfg := config.Load()
	log := logger.New(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	// Пул подключений разделяется всеми одновременными запросами
	db.SetMaxOpenConns(cfg.PoolSize)

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				log.Errorf(readErr, "Не удалось прочитать миграцию %s", file)
				continue
			}
			if _, execErr := db.Exec(string(content)); execErr != nil {
				log.Errorf(execErr, "Миграция %s завершилась ошибкой", file)
			} else {
				log.Infof("Миграция %s применена.", file)
			}
		}
	}

	// Инициализируем репозиторий, сервис и Handler
	attractionRepo := repository.NewAttractionRepository(db)
	attractionService := service.NewAttractionService(attractionRepo)
	h := handler.NewHandler(attractionService)

	router := gin.New()
	router.Use(handler.RequestLogger(log), gin.Recovery())
	api := router.Group("/api")
	{
		api.GET("/attractions", h.ListAttractions)
		api.GET("/attraction/:attractionId", h.GetAttraction)
		api.GET("/categories", h.ListCategories)
		api.GET("/mrts", h.ListMRTs)
	}

	// Статические страницы фронтенда
	router.StaticFile("/", "./static/index.html")
	router.GET("/attraction/:id", func(c *gin.Context) {
		c.File("./static/attraction.html")
	})
	router.GET("/booking", func(c *gin.Context) {
		c.File("./static/booking.html")
	})
	router.GET("/thankyou", func(c *gin.Context) {
		c.File("./static/thankyou.html")
	})
	router.Static("/static", "./static")

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	log.Infof("Сервер слушает порт %s", cfg.APIPort)
	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

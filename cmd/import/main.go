package main

import (
	"flag"
	"os"

	"github.com/rachelL-tech/taipei-day-trip/internal/config"
	"github.com/rachelL-tech/taipei-day-trip/internal/importer"
	"github.com/rachelL-tech/taipei-day-trip/internal/logger"
	"github.com/rachelL-tech/taipei-day-trip/internal/repository"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	dataPath := flag.String("data", "data/taipei-attractions.json", "путь к JSON-экспорту достопримечательностей")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(&logger.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	// Подключение к базе данных
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	defer db.Close()

	attractionRepo := repository.NewAttractionRepository(db)
	// Весь импорт идет одной транзакцией: либо все записи, либо ни одной
	if err := importer.New(attractionRepo, log).Run(*dataPath); err != nil {
		log.Fatalf("Импорт не выполнен: %v", err)
	}
}

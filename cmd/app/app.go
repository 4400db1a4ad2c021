package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/config"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/db"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/logger"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store, err := questions.Load("./cmd/app/questions.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize question sets -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, store)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

package main

import (
	"os"

	"github.com/green-haven/nursery-backend/internal/app"
	config "github.com/green-haven/nursery-backend/internal/cfg"
	"github.com/green-haven/nursery-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			Green Haven Nursery API
//	@version		1.0
//	@description	Backend интернет-магазина питомника растений: каталог,
//	@description	категории, заказы, подтверждение оплаты и хостинг изображений.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file found, relying on environment")
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}

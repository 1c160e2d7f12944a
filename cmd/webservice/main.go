package main

import (
	"fmt"
	"os"

	"github.com/mondragon/guitar-shop/storefront-service/config"
	"github.com/mondragon/guitar-shop/storefront-service/internal/app"
	"github.com/mondragon/guitar-shop/storefront-service/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(
		fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort),
		config.MongoDBConfig.DBName,
	)
	if err != nil {
		panic(err)
	}

	a := app.App{
		DB:     db,
		Config: config,
	}
	a.Start()
}

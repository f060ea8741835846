package main

import (
	"fmt"
	"log"

	"github.com/reisermn/virtual-island/internal/config"
	"github.com/reisermn/virtual-island/internal/database"
	"github.com/reisermn/virtual-island/internal/handler"
	"github.com/reisermn/virtual-island/internal/session"
)

func init() {
	config.LoadConfig()
}

func main() {
	// Connect to the database and the session store
	database.Connect(config.AppConfig.DatabaseURL)
	session.Connect(config.AppConfig.RedisURL, config.AppConfig.SessionTTL)

	router := handler.NewRouter()

	fmt.Println("Server is running on", config.AppConfig.ListenAddr)
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}

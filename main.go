package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/SparkHacks/spark-dashboard-sub000/cmd/app"
)

// @contact.name   SparkHacks Tech Team
// @contact.url    https://sparkhacks.org
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

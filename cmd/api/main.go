package main

import (
	_ "github.com/felipecasali/iphoneshopping-sub000/docs"
	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Device Valuation API
// @version         1.0
// @description     Valuation service for used Apple devices (market estimates + technical-report pricing) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

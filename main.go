package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/neuroljus/neurohus/cmd/app"
)

// @contact.name   Neuroljus
// @contact.url    https://neuroljus.se
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

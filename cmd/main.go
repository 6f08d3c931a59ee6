package main

import (
	"os"

	"github.com/Vijay-C-S/zenzone-sub001/config"
	"github.com/Vijay-C-S/zenzone-sub001/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

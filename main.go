package main

import (
	"Tecnofit/database"
	"Tecnofit/internal/server"
	"fmt"
	"log"
	"os"
)

func configurationPath() string {
	if path := os.Getenv("TECNOFIT_CONFIG"); path != "" {
		return path
	}
	return "tecnofit.yaml"
}

func main() {
	srv, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(srv.DB, srv.LogService)

	srv.Purger.StartPurgeCycle()
	defer srv.Purger.StopPurgeCycle()

	app := server.NewApp(srv)
	err = app.Listen(fmt.Sprintf(":%d", srv.Configuration.Server.Port))
	if err != nil {
		srv.LogService.Log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"os"

	"github.com/danandika/mhs-api/internal/pkg/logger"
	"github.com/danandika/mhs-api/internal/server"
)

// @title Student Record Service
// @version 1.0
// @description Token-authenticated CRUD API over the mahasiswa collection

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token issued at record creation

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}

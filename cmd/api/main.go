package main

import (
	"os"

	"github.com/tanmay/coachdesk/internal/bootstrap"
	"github.com/tanmay/coachdesk/internal/server"
)

// @title           CoachDesk API
// @version         1.0
// @description     Attendance and fee settlement backend for a coaching center.

// @contact.name   CoachDesk
// @contact.email  support@coachdesk.app

// @license.name  MIT

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Database setup failed")
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Dependency initialization failed")
	}

	router := bootstrap.SetupRouter(cfg, deps, dbPool, lgr)

	srv := server.New(cfg.Server.Port, router, lgr)
	if err := srv.Run(); err != nil {
		lgr.Fatal().Err(err).Msg("Server terminated with error")
	}
}

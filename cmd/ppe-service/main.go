package main

import (
	"fmt"
	"os"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/auth"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/config"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/db"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/excel"
	httphandler "github.com/iwemrn/PPEs-and-contracts-equipment/internal/http"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/http/middleware"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/logger"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/pdf"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/plans"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/repository"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	facilityRepo := repository.NewFacilityRepository(database)
	equipmentRepo := repository.NewEquipmentRepository(database)
	contractRepo := repository.NewContractRepository(database)

	pdfGenerator, err := pdf.NewGenerator(cfg.PDF.FontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	registryService := service.NewRegistryService(
		facilityRepo,
		equipmentRepo,
		contractRepo,
		excel.NewGenerator(),
		pdfGenerator,
		plans.NewLocator(cfg.Plans.Dir),
		log,
	)
	contractService := service.NewContractService(equipmentRepo, facilityRepo, contractRepo, cfg, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(registryService, contractService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting ppe service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"

	"github.com/ethpandaops/getgas/handlers"
	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/types"
	"github.com/ethpandaops/getgas/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, *configPath)
	if err != nil {
		logrus.Fatalf("error reading config file: %v", err)
	}
	utils.Config = cfg
	logWriter, logger := utils.InitLogger()
	defer logWriter.Dispose()

	logger.WithFields(logrus.Fields{
		"config":  *configPath,
		"version": utils.BuildVersion,
		"release": utils.BuildRelease,
	}).Printf("starting")

	err = services.InitGasService(ctx, logger)
	if err != nil {
		logger.Fatalf("error initializing gas service: %v", err)
	}

	if cfg.Metrics.Enabled && !cfg.Metrics.Public {
		err = metrics.StartMetricsServer(logger.WithField("module", "metrics"), cfg.Metrics.Host, cfg.Metrics.Port)
		if err != nil {
			logger.Fatalf("error starting metrics server: %v", err)
		}
	}

	webserver, err := startWebserver(logger)
	if err != nil {
		logger.Fatalf("error starting webserver: %v", err)
	}

	utils.WaitForCtrlC()
	logger.Println("exiting...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := webserver.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("error shutting down webserver")
	}
	services.GlobalGasService.StopService()
}

func startWebserver(logger logrus.FieldLogger) (*http.Server, error) {
	router := handlers.NewRouter(services.GlobalGasService.RateLimiter())

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.UseHandler(router)

	frontendCfg := &utils.Config.Frontend
	srv := &http.Server{
		Addr:         utils.Config.Server.Host + ":" + utils.Config.Server.Port,
		WriteTimeout: frontendCfg.HttpWriteTimeout,
		ReadTimeout:  frontendCfg.HttpReadTimeout,
		IdleTimeout:  frontendCfg.HttpIdleTimeout,
		Handler:      n,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, err
	}

	logger.Printf("http server listening on %v", srv.Addr)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Error serving frontend")
		}
	}()

	return srv, nil
}

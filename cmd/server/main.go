package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AngelCh415/adcompare/internal/chart"
	"github.com/AngelCh415/adcompare/internal/config"
	"github.com/AngelCh415/adcompare/internal/extract"
	"github.com/AngelCh415/adcompare/internal/httpx"
	"github.com/AngelCh415/adcompare/internal/metrics"
	"github.com/AngelCh415/adcompare/internal/utils"
)

func main() {
	cfg, cfgErr := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if cfgErr != nil {
		logger.Error("config error", slog.String("err", cfgErr.Error()))
		os.Exit(1)
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	inst := utils.NewInstruments(promReg)

	meta, google := cfg.Platforms["meta"], cfg.Platforms["google"]
	reg := extract.NewRegistry(extract.NewMeta(meta.Label), extract.NewGoogle(google.Label))
	palette := chart.NewPalette(
		chart.Platform{Label: meta.Label, ColorKey: meta.ColorKey, Color: meta.Color},
		chart.Platform{Label: google.Label, ColorKey: google.ColorKey, Color: google.Color},
	)
	mSvc := metrics.NewService(reg, palette, inst, logger)

	r := httpx.NewRouter(logger, mSvc, inst, cfg.MaxBodyBytes)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTPTimeout,
		WriteTimeout:      cfg.HTTPTimeout,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.Any("platforms", reg.Platforms()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

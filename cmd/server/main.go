package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lankamar/cardiac-ecg-simulator/internal/ecg"
	"github.com/lankamar/cardiac-ecg-simulator/internal/platform/config"
	"github.com/lankamar/cardiac-ecg-simulator/internal/platform/logger"
	"github.com/lankamar/cardiac-ecg-simulator/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")
	profileKey := config.GetEnv("DEFAULT_PROFILE", string(ecg.DefaultProfileKey))
	heartRate := config.GetEnvFloat("HEART_RATE", 0)
	noiseLevel := config.GetEnvFloat("NOISE_LEVEL", 0.02)
	layerName := config.GetEnv("LAYER", string(ecg.LayerParametric))

	log := logger.New(logLevel, logFormat)

	svc := ecg.NewService(nil)
	svc.SelectProfile(ecg.ProfileKey(profileKey))
	svc.SetHeartRate(heartRate)
	svc.SetNoiseLevel(noiseLevel)
	if layer, err := ecg.ParseLayer(layerName); err == nil {
		svc.SetLayer(layer)
	} else {
		log.Warn("unknown LAYER, using parametric", "layer", layerName)
	}
	svc.SetRunning(true)

	met := metrics.New()
	met.SetHeartRate(heartRate)
	met.SetNoiseLevel(noiseLevel)
	h := ecg.NewHandler(svc, log, met)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() {
			st := svc.Stats()
			met.SetBeatCounts(st.Beats, st.DroppedBeats, st.EctopicBeats, st.Buffers)
		}).ServeHTTP(w, r)
	})
	h.Routes(r)

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", port,
		"profile", profileKey,
		"layer", layerName,
		"noise_level", noiseLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

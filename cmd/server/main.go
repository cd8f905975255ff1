package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dashrun/rivals-backend/internal/config"
	"github.com/dashrun/rivals-backend/internal/highscore"
	"github.com/dashrun/rivals-backend/internal/httpapi"
	"github.com/dashrun/rivals-backend/internal/hub"
	"github.com/dashrun/rivals-backend/internal/themes"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	tiers := themes.Default()
	if cfg.ThemesFile != "" {
		tiers, err = themes.LoadFile(cfg.ThemesFile)
		if err != nil {
			log.Fatal("loading themes", zap.String("file", cfg.ThemesFile), zap.Error(err))
		}
	}

	var scores highscore.Store = highscore.NewMemStore()
	if cfg.DatabaseURL != "" {
		gs, err := highscore.OpenGorm(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("opening high score store", zap.Error(err))
		}
		scores = gs
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hub.NewHub(ctx, hub.Deps{
		Log:    log.Named("hub"),
		Tiers:  tiers,
		Scores: scores,
		Tick:   cfg.TickInterval,
	})

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, log.Named("http"))
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

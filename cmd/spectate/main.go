package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pebblegreen/stealth-golf/internal/game"
)

func main() {
	var addr string
	var levelPath string

	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&levelPath, "level", "", "path to a level JSON file (default: built-in fallback)")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	level := game.FallbackLevel()
	if levelPath != "" {
		level, err = game.LoadLevel(levelPath)
		if err != nil {
			log.Fatal("load level", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := newHub(game.NewWorld(level), log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.handleWS)
	srv := &http.Server{Addr: addr, Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(ctx)
	})
	g.Go(func() error {
		log.Info("spectate server listening", zap.String("addr", addr), zap.String("level", level.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("server exited", zap.Error(err))
	}
	log.Info("shut down cleanly")
}

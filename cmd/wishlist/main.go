package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest"
	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/bucket"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/extras/infile"
	extrasInmemory "github.com/danilovkiri/dk_go_wishlist/internal/storage/extras/inmemory"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/extras/inredis"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/extras/insqlite"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/inpsql"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/localfs"
	"github.com/danilovkiri/dk_go_wishlist/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// a missing .env file is not an error
	_ = godotenv.Load()
	cfg := config.NewDefaultConfiguration()
	if err := cfg.Parse(); err != nil {
		logrus.Fatal(err)
	}
	log := logger.New(cfg.LogLevel)
	// add a waiting group for the goroutines closing storages on ctx.Done
	wg := &sync.WaitGroup{}

	// initialize storage, switch between "inmemory" and "inpsql" modules
	var st storage.Storage
	switch cfg.DatabaseDSN {
	case "":
		log.Warn("DATABASE_DSN is empty, wishes are kept in memory")
		st = inmemory.InitStorage(log)
	default:
		wg.Add(1)
		psql, err := inpsql.InitStorage(ctx, wg, cfg, log)
		if err != nil {
			log.Fatal(err)
		}
		st = psql
	}
	extras, err := initExtras(ctx, wg, cfg, log)
	if err != nil {
		log.Fatal(err)
	}
	imagesFS, err := localfs.OpenDir(cfg.ImageStoragePath)
	if err != nil {
		log.Fatal(err)
	}

	// initialize server
	server, err := rest.InitServer(cfg, st, extras, bucket.InitBucket(imagesFS, cfg.BaseURL, log), log)
	if err != nil {
		log.Fatal(err)
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Info("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		// pending deletions are committed here, before storages get closed by cancel
		if err := server.Shutdown(ctxTO); err != nil {
			log.Error("Server shutdown failed: ", err)
		}
		cancel()
	}()
	// start up the server
	log.WithFields(logrus.Fields{
		"address": cfg.ServerAddress,
		"extras":  cfg.ExtrasBackend,
	}).Info("Server start attempted")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	// wait for storage goroutines to finish before exiting
	wg.Wait()
	log.Info("Server shutdown succeeded")
}

// initExtras opens the extras store selected by EXTRAS_BACKEND.
func initExtras(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log *logrus.Logger) (storage.ExtrasStore, error) {
	switch cfg.ExtrasBackend {
	case config.ExtrasBackendMemory:
		return extrasInmemory.InitStorage(), nil
	case config.ExtrasBackendSQLite:
		wg.Add(1)
		return insqlite.InitStorage(ctx, wg, cfg.ExtrasSQLitePath, log)
	case config.ExtrasBackendRedis:
		wg.Add(1)
		return inredis.InitStorage(ctx, wg, cfg.RedisAddress, log)
	default:
		fsys, err := localfs.OpenDir(filepath.Dir(cfg.ExtrasFilePath))
		if err != nil {
			return nil, err
		}
		return infile.InitStorage(fsys, filepath.Base(cfg.ExtrasFilePath), log), nil
	}
}

// Package rest provides functionality for initializing a server for the wishlist service.
package rest

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_wishlist/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_wishlist/internal/config"
	"github.com/danilovkiri/dk_go_wishlist/internal/i18n"
	accounts "github.com/danilovkiri/dk_go_wishlist/internal/service/accounts/v1"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/currency"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/enricher"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/images"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/realtime"
	reserver "github.com/danilovkiri/dk_go_wishlist/internal/service/reserver/v1"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/searcher"
	secretary "github.com/danilovkiri/dk_go_wishlist/internal/service/secretary/v1"
	wishes "github.com/danilovkiri/dk_go_wishlist/internal/service/wishes/v1"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage"
	"github.com/danilovkiri/dk_go_wishlist/internal/storage/bucket"
)

const userAgent = "Mozilla/5.0 (compatible; WishlistBot/1.0)"

var (
	serverStart = time.Now()
	publishOnce sync.Once
)

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// Server wraps http.Server with the wish provider whose pending deletions must be flushed on shutdown.
type Server struct {
	*http.Server
	Provider *wishes.Provider
}

// Shutdown stops accepting requests and ends event streams, then commits pending wish
// deletions while storage is still open. The commits are not bound to the drain deadline of ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Server.Shutdown(ctx)
	return errors.Join(err, s.Provider.Shutdown(ctx))
}

// InitServer returns a Server object ready to be listening and serving.
func InitServer(cfg *config.Config, st storage.Storage, extras storage.ExtrasStore, objects storage.Bucket, log *logrus.Logger) (*Server, error) {
	catalog, err := i18n.NewCatalog(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	provider, err := wishes.InitProvider(st, extras, objects, realtime.InitBroker(log), cfg.DeleteGracePeriod, log)
	if err != nil {
		return nil, err
	}
	accountService, err := accounts.InitAccounts(st, log)
	if err != nil {
		return nil, err
	}
	reserverService, err := reserver.InitReserver(st, objects, log)
	if err != nil {
		return nil, err
	}
	gallery, err := images.InitGallery(st, objects, log)
	if err != nil {
		return nil, err
	}
	enricherService := enricher.InitEnricher(resty.New().SetHeader("User-Agent", userAgent), log)
	searcherService := searcher.InitSearcher(cfg, resty.New(), log)
	secretaryService, err := secretary.NewSecretaryService(cfg)
	if err != nil {
		return nil, err
	}
	cookieHandler, err := middleware.NewCookieHandler(secretaryService, cfg, log)
	if err != nil {
		return nil, err
	}

	wishHandler, err := handlers.InitWishHandler(provider, gallery, log)
	if err != nil {
		return nil, err
	}
	accountHandler, err := handlers.InitAccountHandler(accountService, reserverService, currency.InitGuesser(st, log), cookieHandler, log)
	if err != nil {
		return nil, err
	}
	publicHandler, err := handlers.InitPublicHandler(reserverService, accountService, cookieHandler, log)
	if err != nil {
		return nil, err
	}
	functionHandler, err := handlers.InitFunctionHandler(enricherService, searcherService, log)
	if err != nil {
		return nil, err
	}
	storageHandler, err := handlers.InitStorageHandler(objects, st, log)
	if err != nil {
		return nil, err
	}
	pageHandler, err := handlers.InitPageHandler(provider, accountService, reserverService, catalog, log)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	instrumenter := middleware.NewInstrumenter(registry, log)
	localeGate := middleware.NewLocaleGate(catalog, log)
	trustedNet := middleware.NewTrustedNet(cfg, log)

	r := chi.NewRouter()
	r.Use(instrumenter.InstrumentHandle)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cookieHandler.CookieHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)

	r.Post("/api/auth/anonymous", accountHandler.HandleSignIn())
	r.Post("/api/auth/logout", accountHandler.HandleLogout())
	r.Get("/api/currency/guess", accountHandler.HandleGuessCurrency())
	r.Group(func(r chi.Router) {
		r.Use(cookieHandler.RequireSession)
		r.Get("/api/users/me", accountHandler.HandleGetProfile())
		r.Patch("/api/users/me", accountHandler.HandleUpdateProfile())
		r.Get("/api/users/me/reservations", accountHandler.HandleMyReservations())
		r.Get("/api/wishes", wishHandler.HandleList())
		r.Post("/api/wishes", wishHandler.HandleCreate())
		r.Get("/api/wishes/events", wishHandler.HandleEvents())
		r.Get("/api/wishes/{id}", wishHandler.HandleGet())
		r.Patch("/api/wishes/{id}", wishHandler.HandleUpdate())
		r.Delete("/api/wishes/{id}", wishHandler.HandleDelete())
		r.Post("/api/wishes/{id}/undo", wishHandler.HandleUndo())
		r.Post("/api/wishes/{id}/images", wishHandler.HandleUploadImages())
		r.Delete("/api/wishes/{id}/images/{imageID}", wishHandler.HandleDeleteImage())
	})
	r.Get("/api/public/{slug}", publicHandler.HandlePublicList())
	r.Post("/api/public/{slug}/wishes/{id}/reservation", publicHandler.HandleReserve())
	r.Delete("/api/public/{slug}/wishes/{id}/reservation", publicHandler.HandleCancelReservation())
	r.Route("/functions", func(r chi.Router) {
		r.Use(middleware.CORSHandle)
		r.HandleFunc("/enrich-wish", functionHandler.HandleEnrich())
		r.HandleFunc("/search-amazon", functionHandler.HandleSearch())
	})
	r.Get("/storage/"+bucket.Name+"/*", storageHandler.HandleGetObject())
	r.Get("/ping", storageHandler.HandlePingDB())

	r.Get("/", redirectToLocale(localeGate, "/wishes"))
	r.Get("/wishes", redirectToLocale(localeGate, "/wishes"))
	r.Get("/l/{slug}", func(w http.ResponseWriter, r *http.Request) {
		redirectToLocale(localeGate, "/l/"+chi.URLParam(r, "slug"))(w, r)
	})
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(localeGate.LocaleHandle)
		r.Get("/wishes", pageHandler.HandleWishesPage())
		r.Get("/l/{slug}", pageHandler.HandlePublicPage())
	})

	r.Group(func(r chi.Router) {
		r.Use(trustedNet.TrustedHandle)
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		r.Mount("/debug", chiMiddleware.Profiler())
	})
	publishOnce.Do(func() {
		expvar.Publish("system.uptime", expvar.Func(uptime))
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	srv.RegisterOnShutdown(provider.CloseEvents)
	return &Server{Server: srv, Provider: provider}, nil
}

// redirectToLocale sends locale-less paths to the visitor's preferred locale.
func redirectToLocale(gate *middleware.LocaleGate, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "/" + gate.PreferredLocale(r) + path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}

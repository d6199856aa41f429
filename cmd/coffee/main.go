package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Douai-hub/coffee/pkg/coffee/app/config"
	"github.com/Douai-hub/coffee/pkg/coffee/domain/service"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/auth"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/catalog"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/memory"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/notify"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/repository"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/transport"
)

const appID = "coffee"

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  appID,
		Usage: "coffee storefront API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrateOnly,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("application terminated")
	}
}

func serve(_ *cli.Context) error {
	cfg, err := config.Parse(appID)
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
			defer file.Close()
		}
	}

	db, err := sqlx.Connect("mysql", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		return err
	}

	dispatcher := notify.NewLogDispatcher()
	carts := service.NewCartService(memory.NewCartRepository(), dispatcher)
	orders := repository.NewOrderRepository(db)
	users := service.NewUserService(repository.NewUserRepository(db), auth.NewBcryptPasswordManager(), dispatcher)
	checkout := service.NewCheckoutService(carts, orders, dispatcher)
	orderReads := service.NewOrderService(orders, dispatcher)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	handlers := transport.NewHandlers(catalog.NewStaticCatalog(), carts, checkout, orderReads, users, tokens)

	log.WithField("url", cfg.ServeRESTAddress).Info("Starting server")

	killSignalChan := getKillSignalChan()
	srv := startServer(cfg.ServeRESTAddress, transport.Router(handlers))

	waitForKillSignal(killSignalChan)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func migrateOnly(_ *cli.Context) error {
	cfg, err := config.Parse(appID)
	if err != nil {
		return err
	}

	db, err := sqlx.Connect("mysql", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return repository.Migrate(db)
}

func startServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()
	return srv
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignal(killSignalChan <-chan os.Signal) {
	killSignal := <-killSignalChan
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}

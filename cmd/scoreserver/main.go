package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"scoreserver/internal/api"
	"scoreserver/internal/auth"
	"scoreserver/internal/cache"
	"scoreserver/internal/config"
	"scoreserver/internal/httpserver"
	"scoreserver/internal/room"
	"scoreserver/internal/storage"
	"scoreserver/internal/telemetry/log"
	"scoreserver/internal/telemetry/metrics"
	"scoreserver/internal/transport"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "scoreserver",
	Short: "riichi mahjong hand scoring and room settlement service",
	Long:  `scoreserver scores winning hands and settles points for live rooms.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}

		log.Init(cfg.AppName, cfg.Log.Level)
		log.Info("config loaded: %+v", cfg)

		if err := run(context.Background(), cfg); err != nil {
			log.Error("scoreserver exited with error: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "resource/application.yml", "path to the service config file")
	_ = rootCmd.MarkFlagRequired("configFile")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	go func() {
		log.Info("starting metrics dashboard, URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
		if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
			log.Error("metrics server: %v", err)
		}
	}()

	issuer := auth.NewIssuer(cfg.Jwt.Secret, cfg.Jwt.Expire)

	handCache, err := cache.New(cfg.Cache.MaxCostBytes, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer handCache.Close()

	var rounds *storage.RoundRepository
	if cfg.Mongo.Url != "" {
		mongo, err := storage.Connect(cfg.Mongo.Url, cfg.Mongo.Db, cfg.Mongo.Username, cfg.Mongo.Password, cfg.Mongo.MinPoolSize, cfg.Mongo.MaxPoolSize)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer mongo.Close()
		rounds = storage.NewRoundRepository(mongo)
	}

	rooms := room.NewManager()
	a := api.New(rooms, rounds, handCache, cfg.Rules.Registry())

	a.Hub = transport.NewHub()

	if cfg.Nats.URL != "" {
		bus := transport.NewEventBus()
		if err := bus.Connect(cfg.Nats.URL); err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		defer bus.Close()
		a.Bus = bus
		a.ResultTopic = cfg.Nats.ResultTopic
	}

	// gin accepts only "debug", "release" or "test" as its mode.
	ginMode := "release"
	if cfg.Log.Level == "debug" {
		ginMode = "debug"
	}
	server := httpserver.New(
		httpserver.WithPort(cfg.HttpPort),
		httpserver.WithMode(ginMode),
	)
	api.RegisterRoutes(server, a, issuer)

	go func() {
		log.Info("starting http server on port %d", cfg.HttpPort)
		if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatal("http server failed: %v", err)
		}
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown: %v", err)
		} else {
			log.Info("http server shut down cleanly")
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	select {
	case <-ctx.Done():
		stop()
	case s := <-sig:
		log.Info("received signal %v, shutting down", s)
		stop()
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jakestbu/nilch/internal/bang"
	"github.com/jakestbu/nilch/internal/conf"
	"github.com/jakestbu/nilch/internal/pkg/logger"
	"github.com/jakestbu/nilch/internal/search/biz"
	"github.com/jakestbu/nilch/internal/search/client"
	"github.com/jakestbu/nilch/internal/search/engine"
	"github.com/jakestbu/nilch/internal/search/service"
	"github.com/jakestbu/nilch/internal/search/types"
	"github.com/jakestbu/nilch/internal/server"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize global logger
	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	// Initialize backend client
	searchClient, err := client.New(&client.Config{
		BaseURL:   config.Backend.BaseURL,
		Timeout:   config.Backend.Timeout,
		UserAgent: config.Backend.UserAgent,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize search client", zap.Error(err))
	}
	defer searchClient.Close()

	// Initialize bang table
	table, err := loadBangTable(config.Search.BangsFile)
	if err != nil {
		log.Fatal("failed to load bang table", zap.Error(err))
	}
	resolver := bang.NewResolver(table)

	log.Info("bang table loaded", zap.Int("bangs", table.Len()))

	// Initialize engine registry and use case
	engines := engine.NewRegistry(config.Search.DefaultEngine)
	searchUseCase := biz.NewSearchUseCase(resolver, searchClient, engines, log)

	// Initialize service
	searchService := service.NewSearchService(searchUseCase, service.Config{
		Defaults: types.StateDefaults{
			Safe:     types.SafeMode(config.Search.DefaultSafe),
			Language: config.Search.DefaultLanguage,
			Engine:   config.Search.DefaultEngine,
		},
		IconBase:   config.Search.IconServiceBase,
		TotalPages: config.Search.TotalPages,
	}, log)

	// Initialize server
	httpServer, err := server.NewHTTPServer(config, log, searchService)
	if err != nil {
		log.Fatal("failed to initialize HTTP server", zap.Error(err))
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// loadBangTable reads the configured bang table file, falling back to the
// embedded table when no file is configured.
func loadBangTable(path string) (*bang.Table, error) {
	if path == "" {
		return bang.DefaultTable()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return bang.ParseTable(data)
}

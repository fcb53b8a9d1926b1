package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/the-maldridge/brwatch/pkg/config"
	"github.com/the-maldridge/brwatch/pkg/graph"
	"github.com/the-maldridge/brwatch/pkg/http"
	"github.com/the-maldridge/brwatch/pkg/monitor"
	"github.com/the-maldridge/brwatch/pkg/source"
	"github.com/the-maldridge/brwatch/pkg/storage"

	_ "github.com/the-maldridge/brwatch/pkg/storage/bc"
)

func main() {
	cfgPath := flag.String("config", "", "config file to load")
	flag.Parse()

	_ = godotenv.Load()

	llevel := os.Getenv("BRWATCH_LOG_LEVEL")
	if llevel == "" {
		llevel = "INFO"
	}
	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  "brwatch",
		Level: hclog.LevelFromString(llevel),
	})
	appLogger.Info("brwatch is initializing")

	cfg := config.NewConfig()
	if *cfgPath != "" {
		if err := cfg.LoadFromFile(*cfgPath); err != nil {
			appLogger.Error("Error loading config", "error", err)
			return
		}
	}

	srv, err := http.New(appLogger)
	if err != nil {
		appLogger.Error("Error initializing webserver", "error", err)
		return
	}

	var store storage.Storage
	if cfg.Store != "" {
		storage.SetLogger(appLogger)
		storage.DoCallbacks()
		store, err = storage.Initialize(cfg.Store)
		if err != nil {
			appLogger.Error("Couldn't initialize storage", "error", err)
			return
		}
	}

	// The checkout revision is display metadata; a Buildroot tree
	// that isn't a git checkout is fine.
	repo := source.New(appLogger)
	repo.Path = cfg.BuildrootDir
	rev := ""
	if err := repo.Open(); err != nil {
		appLogger.Warn("Buildroot tree is not a git checkout", "error", err)
	} else if rev, err = repo.At(); err != nil {
		appLogger.Warn("Error retrieving git hash", "error", err)
	}

	gopts := []graph.Option{
		graph.WithLogger(appLogger),
		graph.WithRootDir(cfg.BuildrootDir),
	}
	if store != nil {
		gopts = append(gopts, graph.WithStorage(store))
	}
	g := graph.New(gopts...)

	g.Load()
	if len(g.Pkgs()) == 0 || (rev != "" && g.Rev() != rev) {
		appLogger.Info("Importer performing initial pass")
		if err := g.ImportAll(); err != nil {
			appLogger.Error("Error importing packages", "error", err)
			return
		}
		g.SetRev(rev)
		g.Persist()
	}

	mon := monitor.New(
		monitor.WithLogger(appLogger),
		monitor.WithBuildRoot(cfg.BuildDir),
	)
	mon.SetPackages(g.Pkgs())
	mon.Mu.Lock()
	if err := mon.Refresh(); err != nil {
		appLogger.Warn("Error refreshing builds", "error", err)
	}
	mon.Mu.Unlock()

	srv.Mount("/api/graph", g.HTTPEntry())
	srv.Mount("/api/monitor", mon.HTTPEntry())
	go srv.Serve(cfg.Bind)

	ticker := time.NewTicker(time.Duration(cfg.RefreshIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, os.Interrupt)

	for {
		select {
		case <-ticker.C:
			mon.Mu.Lock()
			if err := mon.Refresh(); err != nil {
				// transient, retried on the next tick
				appLogger.Warn("Error refreshing builds", "error", err)
			}
			mon.Mu.Unlock()
		case <-stop:
			appLogger.Info("Shutting down")
			if store != nil {
				store.Close()
			}
			appLogger.Info("Goodbye!")
			return
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rawhoneyguide/honeyexplorer/config"
	"github.com/rawhoneyguide/honeyexplorer/internal/app"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/restapi"
	"github.com/rawhoneyguide/honeyexplorer/internal/seeder"
	"github.com/rawhoneyguide/honeyexplorer/internal/store"
	"go.uber.org/zap"
)

var (
	h        = flag.Bool("h", false, "help usage")
	conffile = flag.String("c", "", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the schema, then exit")
)

func printHelp() {
	if *h {
		fmt.Fprintln(os.Stderr, "usage: honeyexplorer [-c config.yml] [-initdb]\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	if cfg.Seed.Enabled {
		if err := seeder.New(application.DB()).Run(); err != nil {
			zap.S().Errorf("seeding failed: %v", err)
		}
	}

	db := application.DB()
	honeys := catalog.NewHoneyService(store.NewGormHoneyRepository(db))
	sources := catalog.NewLocalSourceService(store.NewGormLocalSourceRepository(db))
	events := catalog.NewEventService(store.NewGormEventRepository(db))
	cities := catalog.NewCityService(store.NewGormCityContentRepository(db), sources, events)
	newsletter := catalog.NewNewsletterService(store.NewGormNewsletterRepository(db))

	server := restapi.NewServer(cfg, honeys, sources, events, cities, newsletter)
	if err := server.Start(); err != nil {
		zap.S().Fatalf("http server stopped: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"procurement-api/internal/repositories"
	"procurement-api/pkg/config"
	"procurement-api/pkg/database/postgresql"
	applogger "procurement-api/pkg/logger"
	"procurement-api/seeders"
)

func main() {
	var opts seeders.Options
	flag.BoolVar(&opts.Users, "users", false, "seed users")
	flag.BoolVar(&opts.Clients, "clients", false, "seed clients")
	flag.BoolVar(&opts.Equipment, "equipment", false, "seed equipment")
	flag.BoolVar(&opts.Requests, "requests", false, "seed requests (uses existing clients unless -clients is set)")
	flag.BoolVar(&opts.Offers, "offers", false, "seed offers (uses existing requests and equipment unless seeded in this run)")
	all := flag.Bool("all", false, "seed every table (equivalent to passing every flag above)")
	flag.IntVar(&opts.Count, "count", 10, "rows per table")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	if *all {
		opts = seeders.Options{Users: true, Clients: true, Equipment: true, Requests: true, Offers: true, Count: opts.Count}
	}
	if !opts.Any() {
		log.Println("No seeder selected. Available flags:")
		flag.PrintDefaults()
		log.Println("Example: go run ./seeders/cmd/seed -all -count 20")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer dbPool.Close()

	s := seeders.NewSeeder(repositories.NewTxManager(dbPool), *seed, logger)
	if err := s.Run(ctx, opts); err != nil {
		logger.Fatal("seeding failed, nothing was written", zap.Error(err))
	}
	logger.Info("seeding finished", zap.Int("count", opts.Count), zap.Uint64("seed", *seed))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"group-dining/config"
	httpapi "group-dining/tally-svc/internal/api/http"
	"group-dining/tally-svc/internal/service"
	"group-dining/tally-svc/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Kafka.Broker == "" {
		log.Fatal("KAFKA_BROKER is required")
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()
	tally := storage.NewRedisTally(rdb)

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go httpapi.StartServer(cfg.TallyAddr, httpapi.NewRouter(httpapi.NewHandler(tally)))

	service.NewConsumer(reader, tally).Start(ctx)
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"group-dining/config"
	httpapi "group-dining/order-svc/internal/api/http"
	"group-dining/order-svc/internal/domain"
	"group-dining/order-svc/internal/service"
	"group-dining/order-svc/internal/storage"
	"group-dining/order-svc/web"

	"github.com/redis/go-redis/v9"
)

func main() {
	menuCSV := flag.String("menu-csv", "", "import menu rows from this CSV file when the menu is empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, dialect := openDatabase(cfg)
	defer db.Close()

	ctx := context.Background()
	store := storage.NewSQLTableStore(db, dialect)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if *menuCSV != "" {
		if err := seedMenu(ctx, store, *menuCSV); err != nil {
			log.Fatal("Failed to import menu:", err)
		}
	}

	var rdb *redis.Client
	if cfg.IDStrategy == "redis" {
		rdb = config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
	}
	ids := newIDGenerator(cfg.IDStrategy, rdb)

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("Publishing order events to %s/%s", cfg.Kafka.Broker, cfg.Kafka.Topic)
	}

	menuSvc := service.NewMenuService(store)
	ledgerSvc := service.NewLedgerService(store, ids, publisher)
	billSvc := service.NewBillService(ledgerSvc)
	sessionSvc := service.NewSessionService(store, ids, billSvc, publisher,
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})

	handler := httpapi.NewHandler(menuSvc, sessionSvc, ledgerSvc, billSvc)
	if handler.Index, err = web.IndexTemplate(); err != nil {
		log.Fatal("Failed to parse index template:", err)
	}

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}

func openDatabase(cfg *config.Config) (*sql.DB, storage.Dialect) {
	if cfg.StoreDriver == "postgres" {
		return config.MustInitPostgres(cfg.DB), storage.Postgres{}
	}
	return config.MustInitSQLite(cfg.SQLitePath), storage.SQLite{}
}

func newIDGenerator(strategy string, rdb *redis.Client) service.IDGenerator {
	switch strategy {
	case "uuid":
		return service.UUIDIDs{}
	case "redis":
		return service.NewSequenceIDs(storage.NewRedisSequence(rdb))
	default:
		return service.NewClockIDs()
	}
}

func seedMenu(ctx context.Context, store *storage.SQLTableStore, path string) error {
	rows, err := store.GetAllRows(ctx, domain.TableMenu)
	if err != nil {
		return err
	}
	if len(rows) > 1 {
		log.Printf("Menu already has %d rows, skipping import of %s", len(rows)-1, path)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := store.ImportCSV(ctx, domain.TableMenu, f)
	if err != nil {
		return err
	}
	log.Printf("Imported %d menu rows from %s", n, path)
	return nil
}

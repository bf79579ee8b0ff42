package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propdesk/appstate"
	"propdesk/config"
	"propdesk/httputil"
	"propdesk/logging"
	"propdesk/metrics"
	"propdesk/models"
	"propdesk/scheduler"
	"propdesk/services"
	"propdesk/storage"
	"propdesk/workers"
)

var (
	snapshotNow = flag.Bool("snapshot", false, "Warm the fallback store once and exit")
	seedNow     = flag.Bool("seed", false, "Seed demo data into empty fallback buckets and exit")
	listEntity  = flag.String("list", "", "Print a collection (properties|units|tenants|leases|users) and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logFile, err := logging.Setup("propdesk.log")
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting propdesk...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Remote API: %s (timeout %s)", cfg.API.BaseURL, cfg.API.Timeout)

	ctx := context.Background()

	// Local fallback store. SQLite is the default; Postgres serves
	// hosted deployments that share one warm cache.
	var local storage.FallbackStore
	var sqliteStore *storage.SQLiteStore
	switch cfg.Fallback.Driver {
	case "postgres":
		pgStore, err := storage.NewPostgresStore(ctx, cfg.Fallback.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		local = pgStore
		log.Println("Fallback store: postgres")
	default:
		sqliteStore, err = storage.NewSQLiteStore(cfg.Fallback.DBPath)
		if err != nil {
			log.Fatalf("Failed to open SQLite: %v", err)
		}
		local = sqliteStore
		log.Printf("Fallback store: sqlite (%s)", cfg.Fallback.DBPath)
	}
	defer local.Close()

	clients := httputil.NewClients(&cfg.API)
	remote := storage.NewRemoteStore(cfg.API.BaseURL, cfg.API.Resources, clients.API)

	dataService := services.NewDataService(remote, local, cfg.API.StrictReads)
	snapshotService := services.NewSnapshotService(remote, local)
	seedService := services.NewSeedService(local)
	log.Println("Services initialized")

	session := appstate.New(&cfg.App)
	log.Printf("Session language: %s", session.Language())

	// One-shot commands
	if *seedNow {
		if err := seedService.Seed(false); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("Seed complete!")
		return
	}

	if *snapshotNow {
		stats, err := snapshotService.Run(ctx)
		if err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Snapshot complete: %s", stats.ToJSON())
		return
	}

	if *listEntity != "" {
		if err := printCollection(ctx, dataService, *listEntity); err != nil {
			log.Fatalf("List failed: %v", err)
		}
		return
	}

	// Daemon mode
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshotWorker := workers.NewSnapshotWorker(snapshotService)
	go snapshotWorker.Run(ctx)
	snapshotWorker.Trigger()
	log.Println("Snapshot worker started")

	sched := scheduler.New(cfg, snapshotWorker, sqliteStore, seedService)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	log.Println("Daemon running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	sched.Stop()
	log.Println("Goodbye!")
}

func printCollection(ctx context.Context, data *services.DataService, entity string) error {
	var records interface{}
	switch entity {
	case storage.BucketProperties:
		records = propertyViews(data.GetProperties(ctx))
	case storage.BucketUnits:
		records = data.GetUnits(ctx)
	case storage.BucketTenants:
		records = data.GetTenants(ctx)
	case storage.BucketLeases:
		records = leaseViews(data.GetLeases(ctx))
	case storage.BucketUsers:
		records = data.GetUsers(ctx)
	default:
		return fmt.Errorf("unknown entity: %s", entity)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// propertyView and leaseView decorate entities with the derived fields
// the console's detail pages show.
type propertyView struct {
	models.Property
	OccupancyRate float64 `json:"occupancyRate"`
}

func propertyViews(props []models.Property) []propertyView {
	views := make([]propertyView, 0, len(props))
	for _, p := range props {
		views = append(views, propertyView{
			Property:      p,
			OccupancyRate: metrics.PropertyOccupancy(&p),
		})
	}
	return views
}

type leaseView struct {
	models.Lease
	Progress      int     `json:"progress"`
	ContractValue float64 `json:"contractValue"`
}

func leaseViews(leases []models.Lease) []leaseView {
	now := time.Now()
	views := make([]leaseView, 0, len(leases))
	for _, l := range leases {
		view := leaseView{Lease: l}
		if progress, err := metrics.LeaseProgressAt(&l, now); err == nil {
			view.Progress = progress
		}
		if value, err := metrics.LeaseContractValue(&l, metrics.Escalation{}); err == nil {
			view.ContractValue = value
		}
		views = append(views, view)
	}
	return views
}

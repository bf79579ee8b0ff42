package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"propdesk/config"
	"propdesk/models"
	"propdesk/services"
	"propdesk/storage"
)

// Triggerable allows workers to be triggered manually
type Triggerable interface {
	Trigger()
}

// Scheduler drives the snapshot worker on a cron or interval schedule
// and polls the local command queue for operator requests.
type Scheduler struct {
	cfg      *config.Config
	worker   Triggerable
	commands *storage.SQLiteStore // nil when the fallback driver has no command queue
	seed     *services.SeedService
	cron     *cron.Cron
	ticker   *time.Ticker
	stopCh   chan struct{}
}

func New(cfg *config.Config, worker Triggerable, commands *storage.SQLiteStore, seed *services.SeedService) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		worker:   worker,
		commands: commands,
		seed:     seed,
		cron:     cron.New(),
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.commands != nil {
		go s.pollCommands(ctx)
	}

	if s.cfg.Snapshot.Cron != "" {
		log.Printf("Starting scheduler with cron: %s", s.cfg.Snapshot.Cron)
		_, err := s.cron.AddFunc(s.cfg.Snapshot.Cron, s.worker.Trigger)
		if err != nil {
			return fmt.Errorf("invalid cron expression: %w", err)
		}
		s.cron.Start()
	} else if s.cfg.Snapshot.Interval > 0 {
		log.Printf("Starting scheduler with interval: %s", s.cfg.Snapshot.Interval)
		s.ticker = time.NewTicker(s.cfg.Snapshot.Interval)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.worker.Trigger()
				case <-s.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	} else {
		log.Println("No schedule configured, daemon will only respond to commands")
	}

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}

func (s *Scheduler) pollCommands(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cmds, err := s.commands.GetPendingCommands()
			if err != nil {
				log.Printf("Error getting commands: %v", err)
				continue
			}

			for _, cmd := range cmds {
				log.Printf("Processing command: %s", cmd.Command)
				if err := s.handleCommand(&cmd); err != nil {
					log.Printf("Command error: %v", err)
				}
				if err := s.commands.MarkCommandProcessed(cmd.ID); err != nil {
					log.Printf("Error marking command processed: %v", err)
				}
			}
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) handleCommand(cmd *models.Command) error {
	switch cmd.Command {
	case models.CmdSnapshot:
		s.worker.Trigger()
		return nil
	case models.CmdSeed:
		if s.seed == nil {
			return fmt.Errorf("seed service not configured")
		}
		return s.seed.Seed(true)
	case models.CmdReset:
		return s.commands.ResetAllData()
	default:
		return fmt.Errorf("unknown command: %s", cmd.Command)
	}
}

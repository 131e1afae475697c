package main

import (
	"context"
	"sync"
	"time"

	"github.com/dipdup-io/l2-token-catalog/internal/catalog"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Monitor - periodically recomputes TVL and reports the grand total
type Monitor struct {
	service  *catalog.Service
	interval time.Duration

	wg *sync.WaitGroup
}

// NewMonitor -
func NewMonitor(service *catalog.Service, interval time.Duration) *Monitor {
	return &Monitor{
		service:  service,
		interval: interval,
		wg:       new(sync.WaitGroup),
	}
}

// Start -
func (m *Monitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.work(ctx)
}

func (m *Monitor) work(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tvl, err := m.service.CalculateTvl(ctx, false)
			if err != nil {
				log.Err(err).Msg("tvl calculation")
				continue
			}

			total := tvl[len(tvl)-1]
			log.Info().
				Str("total", total.Tvl).
				Int("tokens", len(tvl)-1).
				Msg("tvl")

			if zerolog.GlobalLevel() <= zerolog.DebugLevel {
				breakdown, err := json.Marshal(tvl[:len(tvl)-1])
				if err != nil {
					log.Err(err).Msg("tvl encoding")
					continue
				}
				log.Debug().RawJSON("breakdown", breakdown).Msg("tvl breakdown")
			}
		}
	}
}

// Close -
func (m *Monitor) Close() error {
	m.wg.Wait()
	return nil
}

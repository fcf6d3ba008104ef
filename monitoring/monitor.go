// Package monitoring logs periodic self-health samples for the server
// process. It observes only; nothing reacts to the samples.
package monitoring

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Monitor samples the server's own CPU and RAM usage on a fixed interval.
type Monitor struct {
	log      *slog.Logger
	interval time.Duration
}

func NewMonitor(log *slog.Logger, interval time.Duration) *Monitor {
	return &Monitor{log: log, interval: interval}
}

// Run blocks until the context is done, logging one sample per tick.
func (m *Monitor) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			status, err := p.Status()
			if err != nil {
				m.log.Error("Error while finding process status", "err", err)
				continue
			}
			cpu, err := p.CPUPercent()
			if err != nil {
				m.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			ram, err := p.MemoryPercent()
			if err != nil {
				m.log.Error("Error while finding process ram usage", "err", err)
				continue
			}
			m.log.Info("Process health", "status", status, "cpu", cpu, "ram", ram)
		}
	}
}

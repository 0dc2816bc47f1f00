package metrics

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/onnwee/meteodaten/backend/internal/logger"
)

// Collector periodically stats the data file and updates the file gauges.
// It never reads file contents.
type Collector struct {
	path     string
	interval time.Duration
	stop     chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(path string, interval time.Duration) *Collector {
	return &Collector{
		path:     path,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.collect()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop stops the metrics collector
func (c *Collector) Stop() {
	close(c.stop)
}

func (c *Collector) collect() {
	info, err := os.Stat(c.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		DataFilePresent.Set(0)
		DataFileSize.Set(0)
		return
	case err != nil:
		logger.Warn("Error stating data file", "path", c.path, "error", err)
		MetricsCollectionErrors.WithLabelValues("data_file").Inc()
		DataFilePresent.Set(0)
		return
	case !info.Mode().IsRegular():
		DataFilePresent.Set(0)
		return
	}

	DataFilePresent.Set(1)
	DataFileSize.Set(float64(info.Size()))
	DataFileModified.Set(float64(info.ModTime().Unix()))
}

// Package feed publishes a simulated vehicle speed.
package feed

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/roffe/speedgauge/pkg/common"
	"github.com/roffe/speedgauge/pkg/ebus"
)

const (
	TopicSpeedMs  = "speed.ms"
	TopicSpeedKmh = "speed.kmh"
)

type Publisher interface {
	Publish(topic string, data float64) error
}

// Sweep accelerates from zero to TopSpeed and back over Period.
type Sweep struct {
	Bus      Publisher
	Topic    string
	TopSpeed float64 // m/s
	Period   time.Duration
	Interval time.Duration
}

// Speed returns the simulated speed at elapsed time d.
func (s *Sweep) Speed(d time.Duration) float64 {
	if s.Period <= 0 {
		return 0
	}
	phase := 2 * math.Pi * float64(d%s.Period) / float64(s.Period)
	return s.TopSpeed * (1 - math.Cos(phase)) / 2
}

// Run publishes a sample every Interval until ctx is cancelled.
func (s *Sweep) Run(ctx context.Context) error {
	if s.Interval <= 0 {
		return errors.New("feed: interval must be positive")
	}
	t := time.NewTicker(s.Interval)
	defer t.Stop()
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if err := s.Bus.Publish(s.Topic, s.Speed(now.Sub(start))); err != nil {
				log.Printf("feed: %v", err)
			}
		}
	}
}

// Wire registers the m/s to km/h conversion on b.
func Wire(b *ebus.Bus) {
	b.RegisterAggregator(ebus.ScaleAggregator(TopicSpeedMs, TopicSpeedKmh, common.MsToKmh))
}

// Package ebus fans out float64 samples per topic. The last value of every
// topic is cached so late subscribers start with the current reading.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var ErrFull = errors.New("publish channel full")

type message struct {
	topic string
	data  float64
}

type Bus struct {
	subs      map[string][]chan float64
	subsMutex sync.Mutex

	in        chan message
	unsubChan chan chan float64
	quit      chan struct{}
	closeOnce sync.Once

	cache *ttlcache.Cache[string, float64]

	aggregators     []*Aggregator
	aggregatorsLock sync.Mutex
}

// New starts a bus. Cached values expire after ttl.
func New(ttl time.Duration) *Bus {
	b := &Bus{
		subs:      make(map[string][]chan float64),
		in:        make(chan message, 100),
		unsubChan: make(chan chan float64, 100),
		quit:      make(chan struct{}),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.run()
	return b
}

var (
	defaultOnce sync.Once
	defaultBus  *Bus
)

// Default returns the process wide bus.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = New(1 * time.Minute)
	})
	return defaultBus
}

func (b *Bus) run() {
	for {
		select {
		case <-b.quit:
			return
		case msg := <-b.in:
			if v := b.cache.Get(msg.topic); v != nil && v.Value() == msg.data {
				continue
			}
			b.cache.Set(msg.topic, msg.data, ttlcache.DefaultTTL)
			b.subsMutex.Lock()
			for _, sub := range b.subs[msg.topic] {
				select {
				case sub <- msg.data:
				default:
				}
			}
			b.subsMutex.Unlock()
			b.aggregatorsLock.Lock()
			for _, agg := range b.aggregators {
				agg.fun(b, msg.topic, msg.data)
			}
			b.aggregatorsLock.Unlock()
		case unsub := <-b.unsubChan:
			b.subsMutex.Lock()
		outer:
			for topic, subz := range b.subs {
				for i, sub := range subz {
					if sub == unsub {
						log.Println("Unsubscribe", topic)
						b.subs[topic] = append(subz[:i], subz[i+1:]...)
						close(unsub)
						if len(b.subs[topic]) == 0 {
							delete(b.subs, topic)
						}
						break outer
					}
				}
			}
			b.subsMutex.Unlock()
		}
	}
}

// Close stops the dispatch loop. Subscriber channels are left open.
func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.quit) })
}

// Publish queues a sample without blocking.
func (b *Bus) Publish(topic string, data float64) error {
	select {
	case b.in <- message{topic: topic, data: data}:
		return nil
	default:
		return ErrFull
	}
}

// Last returns the cached value of topic.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

func (b *Bus) Subscribe(topic string) chan float64 {
	log.Println("Subscribe", topic)
	respChan := make(chan float64, 100)
	b.subsMutex.Lock()
	b.subs[topic] = append(b.subs[topic], respChan)
	b.subsMutex.Unlock()
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc calls f for every sample on topic from a new goroutine
// and returns a function that unsubscribes it.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	b.unsubChan <- channel
}

package ebus

type AggregatorFunc func(b *Bus, topic string, value float64)

type Aggregator struct {
	fun AggregatorFunc
}

// RegisterAggregator adds aggs once each. Aggregators run on the dispatch
// goroutine and must only Publish.
func (b *Bus) RegisterAggregator(aggs ...*Aggregator) {
	b.aggregatorsLock.Lock()
	defer b.aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// ScaleAggregator republishes every sample of input multiplied by factor
// on output, e.g. m/s to km/h.
func ScaleAggregator(input, output string, factor float64) *Aggregator {
	return &Aggregator{
		fun: func(b *Bus, topic string, value float64) {
			if topic == input {
				b.Publish(output, value*factor)
			}
		},
	}
}

package events

import "github.com/atomicstack/gemtui/internal/logging"

type TickerTracer struct{}

var Ticker = TickerTracer{}

func (TickerTracer) Run(count int) {
	logging.Trace("ticker.run", map[string]interface{}{"count": count})
}

package game

type EventType int

const (
	EventSnapshot     EventType = iota // any externally visible change
	EventRoundStarted                  // first accepted move of a round
	EventRoundOver                     // collision ended the round
	EventNewBest                       // best score was raised
)

type Event struct {
	Type     EventType
	Snapshot Snapshot
}

type EventHandler func(Event)

// EventBus fans events out to subscribers. Handlers run synchronously on the
// goroutine that emits, which is the run loop; they must not block.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn. Call it before the run loop starts.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

package game

// EventKind identifies an emitted game event.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventDiceRolled   EventKind = "dice_rolled"
	EventRowClaimed   EventKind = "row_claimed"
	EventRowClosed    EventKind = "row_closed"
	EventTurnAdvanced EventKind = "turn_advanced"
	EventGameWon      EventKind = "game_won"
)

// Event is published to the game listener after each completed mutation.
type Event struct {
	Kind    EventKind
	Payload any
}

// Listener observes game events. Notify runs synchronously inside the
// mutating call, after the state change is complete.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// Notify calls f(evt).
func (f ListenerFunc) Notify(evt Event) { f(evt) }

type GameStartedPayload struct {
	Players []string
}

type DiceRolledPayload struct {
	Player    string
	Dice      []int
	RollsLeft int
}

type RowClaimedPayload struct {
	Player   string
	Category string
	Points   int
	Dice     []int
}

type RowClosedPayload struct {
	Player   string
	Category string
}

type TurnAdvancedPayload struct {
	Player string
	Index  int
}

type GameWonPayload struct {
	Winner    Standing
	Standings []Standing
}

// Package game runs a local Yatzy session: dice, turn order, scoring and
// win detection for a fixed roster of players.
//
// A Game is driven by one caller and is not safe for concurrent use. Every
// method either completes its mutation or returns a domain error from
// internal/platform/errors and leaves the state untouched.
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/yatzy/internal/core/dice"
	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
	"github.com/louisbranch/yatzy/internal/random"
	"github.com/louisbranch/yatzy/internal/yatzy/scorecard"
)

// NumDice is the number of dice in play.
const NumDice = 5

// Die is one die on the table. Value is dice.Unset until the first roll.
type Die struct {
	Value  int
	Locked bool
}

// Game holds the roster, dice and turn state.
type Game struct {
	players      []*scorecard.Player
	dice         [NumDice]Die
	active       int
	rollsLeft    int
	rollsPerTurn int
	playing      bool
	decided      bool

	rng      *rand.Rand
	listener Listener
}

// TurnResult reports what NextTurn did.
type TurnResult struct {
	// Ended is true when the call finished the game.
	Ended bool
	// Winner is the top standing when Ended is true.
	Winner Standing
	// Standings are the final scores, best first, when Ended is true.
	Standings []Standing
}

// New creates a game for the named players, in seat order. The dice are
// thrown once so the table is never shown unrolled.
func New(names []string, opts ...Option) (*Game, error) {
	if len(names) == 0 {
		return nil, apperrors.New(apperrors.CodeRosterEmpty, "roster is empty")
	}

	o := options{rollsPerTurn: DefaultRollsPerTurn}
	for _, opt := range opts {
		opt(&o)
	}

	players := make([]*scorecard.Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.WithMetadata(apperrors.CodePlayerNameEmpty,
				fmt.Sprintf("player %d has no name", i+1),
				map[string]string{"Position": strconv.Itoa(i + 1)})
		}
		players[i] = scorecard.NewPlayer(name)
	}

	rng := o.rng
	if rng == nil {
		seed, err := resolveSeed(o.seed)
		if err != nil {
			return nil, err
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		players:      players,
		rollsLeft:    o.rollsPerTurn,
		rollsPerTurn: o.rollsPerTurn,
		rng:          rng,
		listener:     o.listener,
	}
	if err := g.throw(); err != nil {
		return nil, err
	}
	return g, nil
}

func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	s, err := random.NewSeed()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeUnknown, "seed dice", err)
	}
	return s, nil
}

// Start begins play with the first player and a fresh throw.
func (g *Game) Start() error {
	if g.playing {
		return apperrors.New(apperrors.CodeGameAlreadyPlaying, "game already playing")
	}
	g.unlockAll()
	if err := g.throw(); err != nil {
		return err
	}
	g.playing = true
	g.active = 0
	g.rollsLeft = g.rollsPerTurn
	g.decided = false

	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name()
	}
	g.emit(EventGameStarted, GameStartedPayload{Players: names})
	return nil
}

// RollDice rerolls the unlocked dice and spends one roll.
func (g *Game) RollDice() error {
	if err := g.requirePlaying(); err != nil {
		return err
	}
	if g.decided {
		return apperrors.New(apperrors.CodeTurnAlreadyDecided, "turn already scored")
	}
	if g.rollsLeft <= 0 {
		return apperrors.New(apperrors.CodeNoRollsRemaining, "no rolls remaining")
	}
	if err := g.throw(); err != nil {
		return err
	}
	g.rollsLeft--
	g.emit(EventDiceRolled, DiceRolledPayload{
		Player:    g.ActivePlayer().Name(),
		Dice:      g.DiceValues(),
		RollsLeft: g.rollsLeft,
	})
	return nil
}

// SetLocked locks or unlocks die i (0-based). Locked dice keep their value
// when rolling.
func (g *Game) SetLocked(i int, locked bool) error {
	if i < 0 || i >= NumDice {
		return apperrors.WithMetadata(apperrors.CodeDieIndexOutOfRange,
			fmt.Sprintf("die index %d out of range", i),
			map[string]string{"Die": strconv.Itoa(i + 1)})
	}
	g.dice[i].Locked = locked
	return nil
}

// ToggleLock flips the lock on die i (0-based).
func (g *Game) ToggleLock(i int) error {
	if i < 0 || i >= NumDice {
		return g.SetLocked(i, false)
	}
	return g.SetLocked(i, !g.dice[i].Locked)
}

// Claim scores the active player's category with the current dice.
func (g *Game) Claim(ref string) error {
	row, err := g.decidableRow(ref)
	if err != nil {
		return err
	}
	values := g.DiceValues()
	if err := row.Claim(values, dice.Distribute(values)); err != nil {
		return err
	}
	g.decided = true
	g.emit(EventRowClaimed, RowClaimedPayload{
		Player:   g.ActivePlayer().Name(),
		Category: row.Key(),
		Points:   row.Points(),
		Dice:     row.Dice(),
	})
	return nil
}

// Close forfeits the active player's category for zero points.
func (g *Game) Close(ref string) error {
	row, err := g.decidableRow(ref)
	if err != nil {
		return err
	}
	if err := row.Close(); err != nil {
		return err
	}
	g.decided = true
	g.emit(EventRowClosed, RowClosedPayload{
		Player:   g.ActivePlayer().Name(),
		Category: row.Key(),
	})
	return nil
}

// NextTurn passes the dice to the next player. When every table is complete
// it ends the game instead: the winner is announced, every sheet is reopened
// and play stops.
func (g *Game) NextTurn() (TurnResult, error) {
	if err := g.requirePlaying(); err != nil {
		return TurnResult{}, err
	}
	if !g.allComplete() {
		if !g.TurnDecided() {
			return TurnResult{}, apperrors.New(apperrors.CodeTurnUndecided, "turn has not been scored")
		}
		return TurnResult{}, g.advance()
	}

	standings := rank(g.players)
	result := TurnResult{Ended: true, Winner: standings[0], Standings: standings}
	for _, p := range g.players {
		p.Reset()
	}
	g.playing = false
	g.decided = false
	g.emit(EventGameWon, GameWonPayload{Winner: result.Winner, Standings: standings})
	return result, nil
}

func (g *Game) advance() error {
	next := (g.active + 1) % len(g.players)
	g.unlockAll()
	if err := g.throw(); err != nil {
		return err
	}
	g.active = next
	g.rollsLeft = g.rollsPerTurn
	g.decided = false
	g.emit(EventTurnAdvanced, TurnAdvancedPayload{Player: g.ActivePlayer().Name(), Index: next})
	return nil
}

// Playing reports whether a game is in progress.
func (g *Game) Playing() bool { return g.playing }

// RollsLeft returns the rolls remaining this turn.
func (g *Game) RollsLeft() int { return g.rollsLeft }

// TurnDecided reports whether the active player has scored this turn. A
// player with a complete sheet has nothing left to decide.
func (g *Game) TurnDecided() bool {
	return g.decided || g.ActivePlayer().Complete()
}

// ActivePlayerIndex returns the seat of the player to move.
func (g *Game) ActivePlayerIndex() int { return g.active }

// ActivePlayer returns the player to move.
func (g *Game) ActivePlayer() *scorecard.Player { return g.players[g.active] }

// Players returns the roster in seat order.
func (g *Game) Players() []*scorecard.Player {
	return append([]*scorecard.Player(nil), g.players...)
}

// Dice returns a copy of the dice in table order.
func (g *Game) Dice() []Die {
	return append([]Die(nil), g.dice[:]...)
}

// DiceValues returns the face values sorted ascending.
func (g *Game) DiceValues() []int {
	values := make([]int, NumDice)
	for i, d := range g.dice {
		values[i] = d.Value
	}
	sort.Ints(values)
	return values
}

// DiceDist returns the face distribution of the current dice.
func (g *Game) DiceDist() dice.Distribution {
	return dice.Distribute(g.DiceValues())
}

// Options lists what the active player can claim with the current dice.
func (g *Game) Options() []scorecard.Option {
	values := g.DiceValues()
	return g.ActivePlayer().Options(values, dice.Distribute(values))
}

// Standings ranks the players by current total.
func (g *Game) Standings() []Standing {
	return rank(g.players)
}

func (g *Game) decidableRow(ref string) (*scorecard.Row, error) {
	if err := g.requirePlaying(); err != nil {
		return nil, err
	}
	if g.decided {
		return nil, apperrors.New(apperrors.CodeTurnAlreadyDecided, "turn already scored")
	}
	return g.ActivePlayer().Row(ref)
}

func (g *Game) requirePlaying() error {
	if !g.playing {
		return apperrors.New(apperrors.CodeGameNotPlaying, "game not playing")
	}
	return nil
}

func (g *Game) allComplete() bool {
	for _, p := range g.players {
		if !p.Complete() {
			return false
		}
	}
	return true
}

func (g *Game) unlockAll() {
	for i := range g.dice {
		g.dice[i].Locked = false
	}
}

// throw rerolls every unlocked die.
func (g *Game) throw() error {
	free := make([]int, 0, NumDice)
	for i, d := range g.dice {
		if !d.Locked {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return nil
	}
	result, err := dice.RollWithRng(g.rng, []dice.Spec{{Sides: dice.Faces, Count: len(free)}})
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "roll dice", err)
	}
	for i, v := range result.Values() {
		g.dice[free[i]].Value = v
	}
	return nil
}

func (g *Game) emit(kind EventKind, payload any) {
	if g.listener == nil {
		return
	}
	g.listener.Notify(Event{Kind: kind, Payload: payload})
}

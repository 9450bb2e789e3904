package yatzy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
	"github.com/louisbranch/yatzy/internal/platform/i18n/catalog"
	"github.com/louisbranch/yatzy/internal/platform/otel"
	"github.com/louisbranch/yatzy/internal/yatzy/game"
	"github.com/louisbranch/yatzy/internal/yatzy/rules"
)

const tracerName = "github.com/louisbranch/yatzy/internal/cmd/yatzy"

// Session plays one game from line commands. It listens to the game's events
// to log them and to announce scores and the winner.
type Session struct {
	out     io.Writer
	locale  string
	printer *message.Printer
	log     *slog.Logger
	tracer  trace.Tracer
	game    *game.Game
}

// NewSession renders to out in the closest supported locale.
func NewSession(out io.Writer, locale string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	locale = catalog.Default().Match(locale)
	return &Session{
		out:     out,
		locale:  locale,
		printer: catalog.Default().Printer(locale),
		log:     logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// Play starts g and executes commands read from in until quit, end of input
// or ctx is done.
func (s *Session) Play(ctx context.Context, g *game.Game, in io.Reader) error {
	if g == nil {
		return errors.New("game is required")
	}
	s.game = g
	if err := s.start(); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.println(s.printer.Sprintf("game.bye"))
			return nil
		case line, ok := <-lines:
			if !ok {
				s.println(s.printer.Sprintf("game.bye"))
				return <-scanErr
			}
			if s.execute(ctx, line) {
				s.println(s.printer.Sprintf("game.bye"))
				return nil
			}
		}
	}
}

func (s *Session) start() error {
	if err := s.game.Start(); err != nil {
		return err
	}
	s.println(infoLine(s.printer.Sprintf("game.started", len(s.game.Players()))))
	s.renderTurn()
	return nil
}

// execute runs one command line and reports whether the session should end.
func (s *Session) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	_, span := s.tracer.Start(ctx, "yatzy."+verb, trace.WithAttributes(
		attribute.String("yatzy.player", s.game.ActivePlayer().Name()),
		attribute.Int("yatzy.rolls_left", s.game.RollsLeft()),
	))
	defer span.End()

	quit, err := s.dispatch(verb, args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
		s.log.Debug("command rejected", "command", verb, "code", apperrors.CodeOf(err))
		s.println(errorLine(s.localize(err)))
	}
	return quit
}

func (s *Session) dispatch(verb string, args []string) (bool, error) {
	switch verb {
	case "roll", "r":
		if err := s.game.RollDice(); err != nil {
			return false, err
		}
		s.renderDice()
	case "lock", "unlock":
		dice, err := parseDice(args)
		if err != nil {
			return false, err
		}
		for _, i := range dice {
			if err := s.game.SetLocked(i, verb == "lock"); err != nil {
				return false, err
			}
		}
		s.renderDice()
	case "claim":
		return false, s.game.Claim(categoryRef(args))
	case "close":
		return false, s.game.Close(categoryRef(args))
	case "next", "n":
		res, err := s.game.NextTurn()
		if err != nil {
			return false, err
		}
		if !res.Ended {
			s.renderTurn()
		}
	case "new":
		return false, s.start()
	case "options", "o":
		s.renderOptions()
	case "table", "t":
		s.renderTable()
	case "help", "h", "?":
		s.println(s.printer.Sprintf("command.help"))
	case "quit", "exit", "q":
		return true, nil
	default:
		s.println(s.printer.Sprintf("command.unknown", verb))
	}
	return false, nil
}

// Notify implements game.Listener.
func (s *Session) Notify(evt game.Event) {
	s.log.Info(string(evt.Kind), eventAttrs(evt)...)

	switch p := evt.Payload.(type) {
	case game.RowClaimedPayload:
		s.println(successLine(s.printer.Sprintf("turn.claimed", s.label(p.Category), p.Points)))
	case game.RowClosedPayload:
		s.println(s.printer.Sprintf("turn.closed", s.label(p.Category)))
	case game.GameWonPayload:
		s.println(successLine(s.printer.Sprintf("game.winner", p.Winner.Name, p.Winner.Total)))
		for i, st := range p.Standings {
			s.println(s.printer.Sprintf("game.standing", i+1, st.Name, st.Total))
		}
	}
}

func eventAttrs(evt game.Event) []any {
	switch p := evt.Payload.(type) {
	case game.GameStartedPayload:
		return []any{"players", strings.Join(p.Players, ", ")}
	case game.DiceRolledPayload:
		return []any{"player", p.Player, "dice", fmt.Sprint(p.Dice), "rolls_left", p.RollsLeft}
	case game.RowClaimedPayload:
		return []any{"player", p.Player, "category", p.Category, "points", p.Points}
	case game.RowClosedPayload:
		return []any{"player", p.Player, "category", p.Category}
	case game.TurnAdvancedPayload:
		return []any{"player", p.Player, "seat", p.Index + 1}
	case game.GameWonPayload:
		return []any{"winner", p.Winner.Name, "total", p.Winner.Total}
	default:
		return nil
	}
}

// localize renders err in the session locale with category keys replaced by
// their display names.
func (s *Session) localize(err error) string {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		return apperrors.Localize(err, s.locale)
	}
	key, ok := domainErr.Metadata["Category"]
	if !ok || rules.Index(key) < 0 {
		return apperrors.Localize(err, s.locale)
	}
	metadata := make(map[string]string, len(domainErr.Metadata))
	for k, v := range domainErr.Metadata {
		metadata[k] = v
	}
	metadata["Category"] = s.label(key)
	return apperrors.Localize(apperrors.WithMetadata(domainErr.Code, domainErr.Message, metadata), s.locale)
}

func (s *Session) label(key string) string {
	return s.printer.Sprintf(rules.Category{Key: key}.LabelKey())
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// parseDice turns 1-based die numbers into indexes.
func parseDice(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > game.NumDice {
			return nil, apperrors.WithMetadata(apperrors.CodeDieIndexOutOfRange,
				"die "+strconv.Quote(arg)+" out of range",
				map[string]string{"Die": arg})
		}
		out = append(out, n-1)
	}
	return out, nil
}

// categoryRef joins words so "full house" finds full_house.
func categoryRef(args []string) string {
	return strings.Join(args, "_")
}

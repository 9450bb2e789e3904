package yatzy

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/louisbranch/yatzy/internal/yatzy/rules"
	"github.com/louisbranch/yatzy/internal/yatzy/scorecard"
)

func (s *Session) renderTurn() {
	player := s.game.ActivePlayer()
	s.println(pterm.DefaultSection.Sprint(s.printer.Sprintf("turn.active", player.Name(), s.game.RollsLeft())))
	s.renderDice()
}

// renderDice shows the dice in table order; locked dice are bracketed.
func (s *Session) renderDice() {
	parts := make([]string, 0, len(s.game.Dice()))
	for _, d := range s.game.Dice() {
		v := strconv.Itoa(d.Value)
		if d.Locked {
			parts = append(parts, pterm.LightCyan("["+v+"]"))
			continue
		}
		parts = append(parts, " "+v+" ")
	}
	s.println(s.printer.Sprintf("turn.dice", strings.Join(parts, " ")))
}

// renderOptions lists eligible rows numbered by sheet position, which claim
// and close accept.
func (s *Session) renderOptions() {
	opts := s.game.Options()
	if len(opts) == 0 {
		s.println(s.printer.Sprintf("turn.no_options"))
		return
	}
	items := make([]pterm.BulletListItem, len(opts))
	for i, opt := range opts {
		n := rules.Index(opt.Row.Key()) + 1
		items[i] = pterm.BulletListItem{
			Level:  0,
			Bullet: strconv.Itoa(n) + ".",
			Text:   s.label(opt.Row.Key()) + ": " + strconv.Itoa(opt.Points),
		}
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		s.log.Error("render options", "error", err)
		return
	}
	s.println(s.printer.Sprintf("turn.options"))
	s.println(strings.TrimRight(list, "\n"))
}

// renderTable prints every player's sheet side by side with the upper sum and
// bonus after the upper section.
func (s *Session) renderTable() {
	players := s.game.Players()
	header := []string{s.printer.Sprintf("sheet.category")}
	for _, p := range players {
		header = append(header, p.Name())
	}
	data := pterm.TableData{header}

	for i, category := range rules.Categories() {
		line := []string{s.label(category.Key)}
		for _, p := range players {
			line = append(line, s.cell(p.Rows()[i]))
		}
		data = append(data, line)

		if i == rules.UpperSectionSize-1 {
			data = append(data,
				s.totalsLine("sheet.upper", players, (*scorecard.Player).UpperScore),
				s.totalsLine("sheet.bonus", players, (*scorecard.Player).Bonus))
		}
	}
	data = append(data, s.totalsLine("sheet.total", players, (*scorecard.Player).Total))

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		s.log.Error("render table", "error", err)
		return
	}
	s.println(table)
}

func (s *Session) cell(row *scorecard.Row) string {
	switch row.State() {
	case scorecard.StateClaimed:
		return strconv.Itoa(row.Points())
	case scorecard.StateClosed:
		return s.printer.Sprintf("sheet.closed")
	default:
		return ""
	}
}

func (s *Session) totalsLine(key string, players []*scorecard.Player, score func(*scorecard.Player) int) []string {
	line := []string{s.printer.Sprintf(key)}
	for _, p := range players {
		line = append(line, strconv.Itoa(score(p)))
	}
	return line
}

func infoLine(text string) string    { return pterm.Info.Sprint(text) }
func errorLine(text string) string   { return pterm.Error.Sprint(text) }
func successLine(text string) string { return pterm.Success.Sprint(text) }

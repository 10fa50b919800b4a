// Package tui provides the Bubble Tea ball picker interface.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/ballfreq/internal/board"
	"github.com/verte-zerg/ballfreq/internal/csvload"
	"github.com/verte-zerg/ballfreq/internal/generator"
	"github.com/verte-zerg/ballfreq/internal/model"
	"github.com/verte-zerg/ballfreq/internal/selector"
	"github.com/verte-zerg/ballfreq/internal/session"
	"github.com/verte-zerg/ballfreq/internal/stats"
)

const hotPickFactor = 2.0

// datasetMsg carries one finished load. Loads complete in any order.
type datasetMsg struct {
	ballType model.BallType
	dataset  model.Dataset
	err      error
}

// result is the content of one result region.
type result struct {
	number  int
	freq    model.Frequency
	rank    model.RankedEntry
	ranked  int
	hasRank bool
}

// Model implements the Bubble Tea ball picker.
type Model struct {
	config  model.Config
	session *session.Session
	board   *board.Board
	fetcher csvload.Fetcher
	gen     *generator.Generator
	logger  *zap.Logger

	balls    []*selector.Selector
	focus    int
	dropdown list.Model

	results map[model.BallType]result

	spinner spinner.Model
	help    help.Model

	width  int
	height int
}

// NewModel constructs a ball picker model with five main balls and one Powerball.
func NewModel(cfg model.Config, sess *session.Session, b *board.Board, fetcher csvload.Fetcher, gen *generator.Generator, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	balls := make([]*selector.Selector, 0, generator.MainPicks+1)
	for i := 0; i < generator.MainPicks; i++ {
		balls = append(balls, selector.New(model.Main, 0))
	}
	balls = append(balls, selector.New(model.Powerball, 0))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	return &Model{
		config:  cfg,
		session: sess,
		board:   b,
		fetcher: fetcher,
		gen:     gen,
		logger:  logger,
		balls:   balls,
		results: map[model.BallType]result{},
		spinner: sp,
		help:    help.New(),
	}
}

// Init implements tea.Model. Both datasets load concurrently.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(model.Main),
		m.loadCmd(model.Powerball),
		m.spinner.Tick,
	)
}

func (m *Model) loadCmd(bt model.BallType) tea.Cmd {
	source := m.config.SourceFor(bt)
	return func() tea.Msg {
		ds, err := csvload.Load(context.Background(), m.fetcher, bt, source)
		return datasetMsg{ballType: bt, dataset: ds, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case datasetMsg:
		m.handleDataset(msg)
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focused().State() == selector.Editing {
			return m.updateEditing(msg)
		}
		return m.updateIdle(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, keys.Open):
		m.activate()
	case key.Matches(msg, keys.QuickPick):
		m.applyPick(m.gen.QuickPick())
	case key.Matches(msg, keys.HotPick):
		mainDS, _ := m.session.Dataset(model.Main)
		pbDS, _ := m.session.Dataset(model.Powerball)
		m.applyPick(m.gen.HotPick(mainDS, pbDS, hotPickFactor))
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Commit):
		n, ok := selectedChoice(m.dropdown)
		if !ok {
			m.focused().Cancel()
			return m, nil
		}
		m.commit(m.focused(), n)
		return m, nil
	case key.Matches(msg, keys.Blur):
		m.focused().Cancel()
		return m, nil
	default:
		var cmd tea.Cmd
		m.dropdown, cmd = m.dropdown.Update(msg)
		return m, cmd
	}
}

func (m *Model) focused() *selector.Selector {
	return m.balls[m.focus]
}

func (m *Model) moveFocus(delta int) {
	count := len(m.balls)
	next := m.focus + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.focus = next
}

func (m *Model) activate() {
	choices, selected, ok := m.focused().Activate()
	if !ok {
		return
	}
	m.dropdown = newDropdown(choices, selected)
}

func (m *Model) commit(ball *selector.Selector, n int) {
	if !ball.Commit(n) {
		return
	}
	m.showResult(ball.BallType(), n)
}

// showResult replaces the result region for bt.
func (m *Model) showResult(bt model.BallType, n int) {
	ds, _ := m.session.Dataset(bt)
	r := result{number: n, freq: stats.Lookup(ds, n)}
	if r.freq.Found && r.freq.Available {
		r.rank, r.hasRank = stats.RankOf(ds, n)
		r.ranked = len(stats.Rank(ds))
	}
	m.results[bt] = r
	m.logger.Debug("frequency lookup",
		zap.String("ball_type", string(bt)),
		zap.Int("number", n),
		zap.String("result", stats.FrequencyText(r.freq)))
}

func (m *Model) applyPick(p generator.Pick) {
	mainIdx := 0
	for _, ball := range m.balls {
		n := p.Powerball
		if ball.BallType() == model.Main {
			if mainIdx >= len(p.Main) {
				continue
			}
			n = p.Main[mainIdx]
			mainIdx++
		}
		if ball.Set(n) {
			m.showResult(ball.BallType(), n)
		}
	}
}

func (m *Model) handleDataset(msg datasetMsg) {
	if msg.err != nil {
		m.logger.Error("failed to load dataset",
			zap.String("ball_type", string(msg.ballType)),
			zap.Error(msg.err))
		if err := m.session.SetFailed(msg.ballType, msg.err); err != nil {
			m.logger.Warn("ignoring dataset failure", zap.Error(err))
		}
	} else {
		if err := m.session.SetDataset(msg.dataset); err != nil {
			m.logger.Warn("ignoring dataset", zap.Error(err))
			return
		}
		m.logger.Info("dataset loaded",
			zap.String("ball_type", string(msg.ballType)),
			zap.Int("records", len(msg.dataset.Records)))
	}
	m.board.Assign(m.session)
}

func (m *Model) loading() bool {
	for _, bt := range model.BallTypes {
		if m.session.Status(bt) == session.Pending {
			return true
		}
	}
	return false
}

func (m *Model) latestDate() (model.LatestDate, bool) {
	var dates [2]*model.LatestDate
	for i, bt := range model.BallTypes {
		ds, ok := m.session.Dataset(bt)
		if !ok {
			continue
		}
		if d, ok := stats.LatestDate(ds); ok {
			dates[i] = &d
		}
	}
	return stats.OverallLatest(dates[0], dates[1])
}

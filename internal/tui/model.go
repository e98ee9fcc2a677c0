package tui

import (
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/hersh/blockfall/internal/game"
	"github.com/hersh/blockfall/internal/scores"
)

const (
	leaderboardSize = 5
	gameOverTopSize = 3
)

// FrameMsg drives one loop iteration: apply the oldest queued command, then
// run the gravity check.
type FrameMsg time.Time

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenLeaderboard
	ScreenGameOver
)

type Model struct {
	screen Screen
	width  int
	height int

	rng    *rand.Rand
	ledger *scores.Ledger
	poll   time.Duration
	clock  func() time.Time

	gameState *game.GameState
	sessionID string
	pending   []game.Command

	finalScore  int
	topScores   []int
	leaderboard []int
}

// NewModel builds the menu-first session. rng is shared by every game the
// session plays.
func NewModel(rng *rand.Rand, ledger *scores.Ledger, poll time.Duration) Model {
	return Model{
		screen: ScreenMenu,
		rng:    rng,
		ledger: ledger,
		poll:   poll,
		clock:  time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.poll)
}

func frameCmd(poll time.Duration) tea.Cmd {
	return tea.Tick(poll, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.screen == ScreenPlaying {
			m.finishGame("interrupted")
		}
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMenu:
		return m.handleMenuKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenLeaderboard:
		m.screen = ScreenMenu
	case ScreenGameOver:
		if msg.String() == "enter" {
			m.screen = ScreenMenu
			m.gameState = nil
		}
	}
	return m, nil
}

func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.startGame()
	case "2":
		m.leaderboard = m.loadTop(leaderboardSize)
		m.screen = ScreenLeaderboard
	case "3", "q":
		return m, tea.Quit
	}
	return m, nil
}

// handlePlayingKeys queues the command; frames consume one each, in order.
func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := commandForKey(msg.String())
	if cmd == game.CmdQuit {
		m.finishGame("quit")
		return m, nil
	}
	m.pending = append(m.pending, cmd)
	return m, nil
}

// nextCommand pops the oldest queued command. An empty queue gives CmdNone.
func (m *Model) nextCommand() game.Command {
	if len(m.pending) == 0 {
		return game.CmdNone
	}
	cmd := m.pending[0]
	m.pending = m.pending[1:]
	return cmd
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.gameState == nil {
		return m, frameCmd(m.poll)
	}

	m.gameState.Apply(m.nextCommand())

	if m.gameState.Update(now) == game.StatusGameOver {
		m.finishGame("game over")
	}
	return m, frameCmd(m.poll)
}

func (m *Model) startGame() {
	m.gameState = game.NewGameState(m.rng, m.clock())
	m.sessionID = uuid.NewString()
	m.pending = nil
	m.screen = ScreenPlaying
	log.Printf("game %s started", m.sessionID)
}

// finishGame records the score once and moves to the game over screen.
func (m *Model) finishGame(reason string) {
	gs := m.gameState
	log.Printf("game %s ended (%s): score %d, lines %d", m.sessionID, reason, gs.Score, gs.Lines)

	if err := m.ledger.Append(gs.Score); err != nil {
		log.Printf("saving score for game %s: %v", m.sessionID, err)
	}

	m.finalScore = gs.Score
	m.topScores = m.loadTop(gameOverTopSize)
	m.screen = ScreenGameOver
}

func (m *Model) loadTop(n int) []int {
	all, err := m.ledger.Load()
	if err != nil {
		log.Printf("loading scores: %v", err)
	}
	return scores.Top(all, n)
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenMenu:
		return m.renderCentered(RenderMenu())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenLeaderboard:
		return m.renderCentered(RenderLeaderboard(m.leaderboard))
	case ScreenGameOver:
		return m.renderCentered(RenderGameOver(m.finalScore, m.topScores) + "\n\nPress ENTER to continue")
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	if m.gameState == nil {
		return "Loading..."
	}
	snap := m.gameState.Snapshot()

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(RenderInfo(snap) + "\n" + RenderControls())

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(snap))

	rightPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderNext(snap.Next))

	return m.renderCentered(lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
		rightPanel,
	))
}

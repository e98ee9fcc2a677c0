package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/game"
)

var (
	colors = map[game.Color]string{
		game.ColorCyan:    "51",
		game.ColorGreen:   "46",
		game.ColorRed:     "196",
		game.ColorYellow:  "226",
		game.ColorMagenta: "201",
		game.ColorBlue:    "21",
		game.ColorWhite:   "15",
	}

	ghostColor = "244"

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)
)

func cellColor(c game.Cell) string {
	t, ok := c.PieceType()
	if !ok {
		return "0"
	}
	return colors[game.ColorOf(t)]
}

func block(color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("██")
}

// RenderBoard draws the locked cells, the ghost and the active piece.
func RenderBoard(s game.Snapshot) string {
	var sb strings.Builder
	p := s.Piece

	for y := 0; y < game.BoardHeight; y++ {
		for x := 0; x < game.BoardWidth; x++ {
			cell := s.Board[y][x]
			char := "  "
			color := "0"

			if !cell.Empty() {
				char = "██"
				color = cellColor(cell)
			}

			for py, row := range p.Shape {
				for px, filled := range row {
					if !filled || p.Pos.X+px != x {
						continue
					}
					if p.Pos.Y+py == y {
						char = "██"
						color = colors[p.Color]
					} else if s.GhostY+py == y && cell.Empty() && char == "  " {
						char = "[]"
						color = ghostColor
					}
				}
			}

			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render(char))
		}
		if y < game.BoardHeight-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiece draws a catalog piece in its spawn orientation.
func RenderPiece(t game.PieceType) string {
	shape, color := game.Definition(t)
	var sb strings.Builder

	for y, row := range shape {
		for _, filled := range row {
			if filled {
				sb.WriteString(block(colors[color]))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < len(shape)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func RenderNext(next [game.LookaheadSize]game.PieceType) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("NEXT") + "\n\n")
	for i, t := range next {
		sb.WriteString(RenderPiece(t))
		if i < len(next)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func RenderInfo(s game.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("BLOCKFALL") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", s.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", s.Lines)) + "\n")

	return sb.String()
}

func RenderMenu() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Render(`
=== GAME MENU ===

1. Start Game
2. View Leaderboard
3. Exit

Choose an option
`)
}

func RenderLeaderboard(top []int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("=== LEADERBOARD ===") + "\n\n")
	if len(top) == 0 {
		sb.WriteString(infoStyle.Render("No records.") + "\n")
	} else {
		sb.WriteString(formatScores(top))
	}
	sb.WriteString("\n" + infoStyle.Render("Press any key to return to menu..."))
	return sb.String()
}

func RenderGameOver(score int, top []int) string {
	var sb strings.Builder
	sb.WriteString(gameOverStyle.Render(fmt.Sprintf("GAME OVER\nScore: %d", score)) + "\n\n")
	if len(top) > 0 {
		sb.WriteString(titleStyle.Render("Top scores") + "\n")
		sb.WriteString(formatScores(top))
	}
	return sb.String()
}

func formatScores(top []int) string {
	var sb strings.Builder
	for i, s := range top {
		sb.WriteString(infoStyle.Render(fmt.Sprintf("%d. %d", i+1, s)) + "\n")
	}
	return sb.String()
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  A ← H  Move left
  D → L  Move right
  W ↑ X  Rotate
  S ↓ J  Hold to speed up
  Q      Quit
`)
}

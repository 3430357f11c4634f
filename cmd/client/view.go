package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	waterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
	shipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	hitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	sunkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func (m clientModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Seabattle"))
	sb.WriteString("\n\n")

	switch m.phase {
	case phaseConnecting:
		sb.WriteString("Contacting the server...\n")

	case phasePlacing:
		ghost := m.placementGhost()
		boards := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderBoard("Your fleet", m.ownBoard, true, ghost),
		)
		sb.WriteString(boards)
		sb.WriteString("\n")
		if len(m.pendingShips) > 0 {
			orientation := "horizontal"
			if !m.horizontal {
				orientation = "vertical"
			}
			sb.WriteString(labelStyle.Render(
				"Placing a " + strings.Repeat("#", m.pendingShips[0]) + " ship, " + orientation,
			))
			sb.WriteString("\n")
		}
		sb.WriteString(helpStyle.Render("arrows/hjkl move, r rotate, enter place, f fill randomly, q quit"))
		sb.WriteString("\n")

	case phaseBattle:
		boards := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderBoard("Enemy waters", m.enemyBoard, true, nil),
			"  ",
			m.renderBoard("Your fleet", m.ownBoard, false, nil),
		)
		sb.WriteString(boards)
		sb.WriteString("\n")
		for _, report := range m.reports {
			sb.WriteString(labelStyle.Render(report))
			sb.WriteString("\n")
		}
		sb.WriteString(helpStyle.Render("arrows/hjkl move, enter fire, q quit"))
		sb.WriteString("\n")

	case phaseOver:
		if m.ownBoard != nil && m.enemyBoard != nil {
			boards := lipgloss.JoinHorizontal(
				lipgloss.Top,
				m.renderBoard("Enemy waters", m.enemyBoard, false, nil),
				"  ",
				m.renderBoard("Your fleet", m.ownBoard, false, nil),
			)
			sb.WriteString(boards)
			sb.WriteString("\n")
		}
		if m.outcome != "" {
			sb.WriteString(titleStyle.Render(m.outcome))
			sb.WriteString("\n")
		}
		sb.WriteString(helpStyle.Render("q quits"))
		sb.WriteString("\n")
	}

	if m.err != "" {
		sb.WriteString(errStyle.Render(m.err))
		sb.WriteString("\n")
	}

	return sb.String()
}

// placementGhost marks the footprint the next enter press would claim,
// so the player can see the full ship before committing.
func (m clientModel) placementGhost() map[mb.Coordinates]bool {
	if len(m.pendingShips) == 0 {
		return nil
	}

	ghost := make(map[mb.Coordinates]bool, m.pendingShips[0])
	for i := 0; i < m.pendingShips[0]; i++ {
		c := m.cursor
		if m.horizontal {
			c.Y += i
		} else {
			c.X += i
		}
		if c.X < 0 || c.X >= m.gridSize || c.Y < 0 || c.Y >= m.gridSize {
			continue
		}
		ghost[c] = true
	}
	return ghost
}

func (m clientModel) renderBoard(title string, board *boardView, withCursor bool, ghost map[mb.Coordinates]bool) string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("   "))
	for y := 0; y < board.size; y++ {
		sb.WriteString(labelStyle.Render(string(rune('1'+y)) + " "))
	}
	sb.WriteString("\n")

	for x := 0; x < board.size; x++ {
		sb.WriteString(labelStyle.Render(string(rune('A'+x)) + "  "))
		for y := 0; y < board.size; y++ {
			cell := renderCell(board.cells[x][y])
			if ghost[mb.NewCoordinates(x, y)] {
				cell = shipStyle.Render("#")
			}
			if withCursor && m.cursor.X == x && m.cursor.Y == y {
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	return boardStyle.Render(titleStyle.Render(title) + "\n" + strings.TrimRight(sb.String(), "\n"))
}

func renderCell(mark cellMark) string {
	switch mark {
	case cellShip:
		return shipStyle.Render("#")
	case cellHit:
		return hitStyle.Render("X")
	case cellMiss:
		return missStyle.Render("o")
	case cellSunk:
		return sunkStyle.Render("X")
	default:
		return waterStyle.Render("~")
	}
}

package main

import (
	"encoding/json"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

type phase uint8

const (
	phaseConnecting phase = iota
	phasePlacing
	phaseBattle
	phaseOver
)

type clientModel struct {
	conn       *websocket.Conn
	difficulty uint8
	preset     uint8

	phase    phase
	gameUuid string
	gridSize int

	// ship sizes still to place, in order
	pendingShips []int
	horizontal   bool
	placed       [][]mb.Coordinates

	ownBoard   *boardView
	enemyBoard *boardView
	cursor     mb.Coordinates

	reports []string
	outcome string
	err     string
}

func newClientModel(conn *websocket.Conn, difficulty, preset uint8) clientModel {
	return clientModel{
		conn:       conn,
		difficulty: difficulty,
		preset:     preset,
		phase:      phaseConnecting,
		horizontal: true,
	}
}

func (m clientModel) Init() tea.Cmd {
	return waitForServer(m.conn)
}

func (m clientModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serverMsg:
		return m.onServerMsg(msg)

	case connClosedMsg:
		m.err = "connection lost: " + msg.err.Error()
		m.phase = phaseOver
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m clientModel) onServerMsg(msg serverMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		m.err = msg.Error.Message
		if msg.Error.ErrorDetails != "" {
			m.err = msg.Error.ErrorDetails
		}

		// A rejected fleet restarts placement from scratch.
		if msg.Code == mc.CodePlaceShips {
			m.restartPlacement()
		}
		return m, waitForServer(m.conn)
	}

	switch msg.Code {
	case mc.CodeSessionID:
		reqCreateGame := mc.NewMessage[mc.ReqCreateGame](mc.CodeCreateGame)
		reqCreateGame.AddPayload(mc.ReqCreateGame{GameDifficulty: m.difficulty, BoardPreset: m.preset})
		if err := m.conn.WriteJSON(reqCreateGame); err != nil {
			m.err = err.Error()
			m.phase = phaseOver
			return m, nil
		}

	case mc.CodeCreateGame:
		var payload mc.RespCreateGame
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			m.err = err.Error()
			return m, waitForServer(m.conn)
		}

		m.gameUuid = payload.GameUuid
		m.gridSize = payload.GridSize
		m.pendingShips = payload.ShipSizes
		m.ownBoard = newBoardView(payload.GridSize)
		m.enemyBoard = newBoardView(payload.GridSize)
		m.cursor = mb.NewCoordinates(0, 0)
		m.phase = phasePlacing

	case mc.CodePlaceShips:
		// Fleet accepted; the start signal follows.

	case mc.CodeStartGame:
		m.phase = phaseBattle
		m.cursor = mb.NewCoordinates(0, 0)
		m.reports = append(m.reports, "Battle stations! Pick a target and press enter.")

	case mc.CodeAttack:
		var payload mc.RespAttack
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			m.err = err.Error()
			return m, waitForServer(m.conn)
		}
		m.applyAttackResp(payload)

	case mc.CodeEndGame:
		var payload mc.RespEndGame
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			m.err = err.Error()
			return m, waitForServer(m.conn)
		}

		if payload.PlayerMatchStatus == mb.PlayerMatchStatusWon {
			m.outcome = "You win! The enemy fleet rests on the ocean floor."
		} else {
			m.outcome = "You lose! Your fleet has been wiped out."
		}
		m.phase = phaseOver
		return m, nil
	}

	return m, waitForServer(m.conn)
}

func (m *clientModel) applyAttackResp(payload mc.RespAttack) {
	m.err = ""
	m.enemyBoard.markShot(mb.NewCoordinates(payload.X, payload.Y), payload.Hit)

	report := "You fire at " + cellLabel(payload.X, payload.Y) + ": " + hitOrMiss(payload.Hit)
	if payload.ShipSunk {
		m.enemyBoard.markSunk(payload.SunkShipCoords)
		report += " - ship sunk!"
	}
	m.reports = append(m.reports, report)

	if payload.ComputerShot != nil {
		pc := payload.ComputerShot
		m.ownBoard.markShot(mb.NewCoordinates(pc.X, pc.Y), pc.Hit)

		report := "Computer fires at " + cellLabel(pc.X, pc.Y) + ": " + hitOrMiss(pc.Hit)
		if pc.ShipSunk {
			m.ownBoard.markSunk(pc.SunkShipCoords)
			report += " - your ship went down!"
		}
		m.reports = append(m.reports, report)
	}

	if len(m.reports) > 6 {
		m.reports = m.reports[len(m.reports)-6:]
	}
}

func (m clientModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.phase {
	case phasePlacing:
		return m.onPlacingKey(msg)
	case phaseBattle:
		return m.onBattleKey(msg)
	}
	return m, nil
}

func (m clientModel) onPlacingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.cursor = m.clampCursor(m.cursor.X-1, m.cursor.Y)
	case "down", "j":
		m.cursor = m.clampCursor(m.cursor.X+1, m.cursor.Y)
	case "left", "h":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y-1)
	case "right", "l":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y+1)

	case "r":
		m.horizontal = !m.horizontal

	case "f":
		if len(m.pendingShips) == 0 {
			break
		}
		m.fillRemainingShips()
		m.sendFleet()

	case "enter", " ":
		if len(m.pendingShips) == 0 {
			break
		}

		footprint, ok := m.ownBoard.tryPlace(m.cursor, m.pendingShips[0], m.horizontal)
		if !ok {
			m.err = "ship does not fit there"
			break
		}

		m.err = ""
		m.placed = append(m.placed, footprint)
		m.pendingShips = m.pendingShips[1:]

		if len(m.pendingShips) == 0 {
			m.sendFleet()
		}
	}

	return m, nil
}

// fillRemainingShips drops whatever is left of the fleet at random
// spots, so a player can skip manual placement entirely or finish a
// half-placed board with one key.
func (m *clientModel) fillRemainingShips() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for len(m.pendingShips) > 0 {
		size := m.pendingShips[0]
		for {
			bow := mb.NewCoordinates(rng.Intn(m.gridSize), rng.Intn(m.gridSize))
			footprint, ok := m.ownBoard.tryPlace(bow, size, rng.Intn(2) == 0)
			if ok {
				m.placed = append(m.placed, footprint)
				break
			}
		}
		m.pendingShips = m.pendingShips[1:]
	}
	m.err = ""
}

func (m *clientModel) sendFleet() {
	reqPlaceShips := mc.NewMessage[mc.ReqPlaceShips](mc.CodePlaceShips)
	reqPlaceShips.AddPayload(mc.ReqPlaceShips{GameUuid: m.gameUuid, Ships: m.placed})
	if err := m.conn.WriteJSON(reqPlaceShips); err != nil {
		m.err = err.Error()
		m.phase = phaseOver
	}
}

func (m clientModel) onBattleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.cursor = m.clampCursor(m.cursor.X-1, m.cursor.Y)
	case "down", "j":
		m.cursor = m.clampCursor(m.cursor.X+1, m.cursor.Y)
	case "left", "h":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y-1)
	case "right", "l":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y+1)

	case "enter", " ":
		if m.enemyBoard.alreadyShot(m.cursor) {
			m.err = "you already fired at " + cellLabel(m.cursor.X, m.cursor.Y)
			break
		}

		reqAttack := mc.NewMessage[mc.ReqAttack](mc.CodeAttack)
		reqAttack.AddPayload(mc.ReqAttack{GameUuid: m.gameUuid, X: m.cursor.X, Y: m.cursor.Y})
		if err := m.conn.WriteJSON(reqAttack); err != nil {
			m.err = err.Error()
			m.phase = phaseOver
		}
	}

	return m, nil
}

func (m *clientModel) restartPlacement() {
	sizes := make([]int, 0, len(m.placed)+len(m.pendingShips))
	for _, footprint := range m.placed {
		sizes = append(sizes, len(footprint))
	}
	sizes = append(sizes, m.pendingShips...)

	m.pendingShips = sizes
	m.placed = nil
	m.ownBoard = newBoardView(m.gridSize)
	m.phase = phasePlacing
}

func (m clientModel) clampCursor(x, y int) mb.Coordinates {
	if x < 0 {
		x = 0
	}
	if x >= m.gridSize {
		x = m.gridSize - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.gridSize {
		y = m.gridSize - 1
	}
	return mb.NewCoordinates(x, y)
}

func hitOrMiss(hit bool) string {
	if hit {
		return "Hit"
	}
	return "Miss"
}

func cellLabel(x, y int) string {
	return string(rune('A'+x)) + string(rune('1'+y))
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

var (
	serverAddr = flag.String("addr", "ws://127.0.0.1:8000/seabattle", "server websocket address")
	difficulty = flag.String("difficulty", "normal", "computer difficulty: easy, normal or hard")
	preset     = flag.String("preset", "small", "board preset: small, medium or big")
)

var difficulties = map[string]uint8{
	"easy":   mb.GameDifficultyEasy,
	"normal": mb.GameDifficultyNormal,
	"hard":   mb.GameDifficultyHard,
}

var presets = map[string]uint8{
	"small":  mb.BoardPresetSmall,
	"medium": mb.BoardPresetMedium,
	"big":    mb.BoardPresetBig,
}

// serverEnvelope mirrors connection.Message with a raw payload so the
// client can pick the concrete type off the code.
type serverEnvelope struct {
	Code    uint8           `json:"code"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   *mc.RespErr     `json:"error,omitempty"`
}

type serverMsg serverEnvelope

type connClosedMsg struct{ err error }

// waitForServer delivers the next server frame to the update loop.
func waitForServer(conn *websocket.Conn) tea.Cmd {
	return func() tea.Msg {
		var envelope serverEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			return connClosedMsg{err: err}
		}
		return serverMsg(envelope)
	}
}

func main() {
	flag.Parse()

	difficultyCode, ok := difficulties[*difficulty]
	if !ok {
		fmt.Fprintln(os.Stderr, "difficulty must be easy, normal or hard")
		os.Exit(1)
	}
	presetCode, ok := presets[*preset]
	if !ok {
		fmt.Fprintln(os.Stderr, "preset must be small, medium or big")
		os.Exit(1)
	}

	conn, _, err := websocket.DefaultDialer.Dial(*serverAddr, nil)
	if err != nil {
		log.Fatalln("could not reach the server:", err)
	}
	defer conn.Close()

	p := tea.NewProgram(newClientModel(conn, difficultyCode, presetCode), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalln(err)
	}
}

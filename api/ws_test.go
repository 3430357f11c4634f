package api_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

type Test[T, K any] struct {
	name string

	expectedCode uint8
	wantErr      bool

	reqPayload  T
	respPayload K // Used to unmarshal the response

	conn *websocket.Conn
}

func TestInvalidSessionIDQuery(t *testing.T) {
	conn, _, err := dialer.Dial(testWsUrl+"?sessionID=bogus", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var resp mc.Message[mc.NoPayload]
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != mc.CodeReceivedInvalidSessionID {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeReceivedInvalidSessionID, resp.Code)
	}
}

func TestInvalidSignal(t *testing.T) {
	tests := []Test[mc.Message[mc.NoPayload], mc.Message[mc.NoPayload]]{
		{
			name:         "random invalid code",
			expectedCode: mc.CodeInvalidSignal,
			reqPayload:   mc.NewMessage[mc.NoPayload](255),
			respPayload:  mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal),
			conn:         testConn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.conn.WriteJSON(test.reqPayload); err != nil {
				t.Fatal(err)
			}

			if err := test.conn.ReadJSON(&test.respPayload); err != nil {
				t.Fatal(err)
			}

			if test.respPayload.Code != test.expectedCode {
				t.Fatalf("expected code: %d\t got: %d", test.expectedCode, test.respPayload.Code)
			}
		})
	}
}

func TestAttackWithoutGame(t *testing.T) {
	req := mc.Message[mc.ReqAttack]{
		Code:    mc.CodeAttack,
		Payload: mc.ReqAttack{GameUuid: "nothing", X: 0, Y: 0},
	}
	if err := testConn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}

	var resp mc.Message[mc.RespAttack]
	if err := testConn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != mc.CodeAttack {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeAttack, resp.Code)
	}
	if resp.Error == nil {
		t.Fatal("expected error attacking before game creation, got nil")
	}
}

func TestCreateGame(t *testing.T) {
	tests := []Test[mc.Message[mc.ReqCreateGame], mc.Message[mc.RespCreateGame]]{
		{
			name:         "invalid difficulty",
			expectedCode: mc.CodeCreateGame,
			wantErr:      true,
			reqPayload: mc.Message[mc.ReqCreateGame]{Code: mc.CodeCreateGame, Payload: mc.ReqCreateGame{
				GameDifficulty: 255,
				BoardPreset:    mb.BoardPresetSmall,
			}},
			respPayload: mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame),
			conn:        testConn,
		},
		{
			name:         "valid hard game on small board",
			expectedCode: mc.CodeCreateGame,
			reqPayload: mc.Message[mc.ReqCreateGame]{Code: mc.CodeCreateGame, Payload: mc.ReqCreateGame{
				GameDifficulty: mb.GameDifficultyHard,
				BoardPreset:    mb.BoardPresetSmall,
			}},
			respPayload: mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame),
			conn:        testConn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testMock.ExpectExec(`INSERT INTO server_analytics \(server_ip, games_created_count\)`).
				WithArgs(pqtype.Inet{IPNet: testRp.GetIpNet(), Valid: true}).
				WillReturnResult(sqlmock.NewResult(0, 1))

			if err := test.conn.WriteJSON(test.reqPayload); err != nil {
				t.Fatal(err)
			}

			if err := test.conn.ReadJSON(&test.respPayload); err != nil {
				t.Fatal(err)
			}

			if test.respPayload.Code != test.expectedCode {
				t.Fatalf("expected code: %d\t got: %d", test.expectedCode, test.respPayload.Code)
			}

			if test.wantErr {
				if test.respPayload.Error == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if test.respPayload.Error != nil {
				t.Fatalf("error: %s", test.respPayload.Error.ErrorDetails)
			}

			if test.respPayload.Payload.GridSize != 5 {
				t.Fatalf("expected grid size: 5\t got: %d", test.respPayload.Payload.GridSize)
			}
			if len(test.respPayload.Payload.ShipSizes) != 3 {
				t.Fatalf("expected 3 ship sizes\t got: %d", len(test.respPayload.Payload.ShipSizes))
			}

			game, err := testGameManager.FindGame(test.respPayload.Payload.GameUuid)
			if err != nil {
				t.Fatal(err)
			}
			testGame = game
			testGameUuid = test.respPayload.Payload.GameUuid
		})
	}
}

func TestPlaceShips(t *testing.T) {
	tests := []Test[mc.Message[mc.ReqPlaceShips], mc.Message[mc.NoPayload]]{
		{
			name:         "wrong fleet size",
			expectedCode: mc.CodePlaceShips,
			wantErr:      true,
			reqPayload: mc.Message[mc.ReqPlaceShips]{Code: mc.CodePlaceShips, Payload: mc.ReqPlaceShips{
				GameUuid: testGameUuid,
				Ships: [][]mb.Coordinates{
					{mb.NewCoordinates(0, 0), mb.NewCoordinates(0, 1)},
				},
			}},
			respPayload: mc.NewMessage[mc.NoPayload](mc.CodePlaceShips),
			conn:        testConn,
		},
		{
			name:         "valid fleet",
			expectedCode: mc.CodePlaceShips,
			reqPayload: mc.Message[mc.ReqPlaceShips]{Code: mc.CodePlaceShips, Payload: mc.ReqPlaceShips{
				GameUuid: testGameUuid,
				Ships: [][]mb.Coordinates{
					{mb.NewCoordinates(0, 0), mb.NewCoordinates(0, 1)},
					{mb.NewCoordinates(1, 0), mb.NewCoordinates(1, 1)},
					{mb.NewCoordinates(2, 0), mb.NewCoordinates(2, 1), mb.NewCoordinates(2, 2)},
				},
			}},
			respPayload: mc.NewMessage[mc.NoPayload](mc.CodePlaceShips),
			conn:        testConn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.conn.WriteJSON(test.reqPayload); err != nil {
				t.Fatal(err)
			}

			if err := test.conn.ReadJSON(&test.respPayload); err != nil {
				t.Fatal(err)
			}

			if test.respPayload.Code != test.expectedCode {
				t.Fatalf("expected code: %d\t got: %d", test.expectedCode, test.respPayload.Code)
			}

			if test.wantErr {
				if test.respPayload.Error == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if test.respPayload.Error != nil {
				t.Fatalf("error: %s", test.respPayload.Error.ErrorDetails)
			}

			// A placed fleet is followed by the start signal.
			var respStartGame mc.Message[mc.NoPayload]
			if err := test.conn.ReadJSON(&respStartGame); err != nil {
				t.Fatal(err)
			}
			if respStartGame.Code != mc.CodeStartGame {
				t.Fatalf("expected code: %d\t got: %d", mc.CodeStartGame, respStartGame.Code)
			}
		})
	}
}

// Fires at every computer ship cell and walks the game to its end:
// the last shot must carry no counter-shot and be followed by the
// end game signal with a win for the human.
func TestAttackUntilVictory(t *testing.T) {
	if testGame == nil {
		t.Fatal("no game from the create game test")
	}

	var shipCells []mb.Coordinates
	computerGrid := testGame.ComputerPlayer().Grid()
	for x := 0; x < computerGrid.Size(); x++ {
		for y := 0; y < computerGrid.Size(); y++ {
			c := mb.NewCoordinates(x, y)
			state, err := computerGrid.CellAt(c)
			if err != nil {
				t.Fatal(err)
			}
			if state == mb.CellStateShip {
				shipCells = append(shipCells, c)
			}
		}
	}

	if len(shipCells) != 7 {
		t.Fatalf("expected 7 computer ship cells on the small board\t got: %d", len(shipCells))
	}

	testMock.ExpectExec(`INSERT INTO server_analytics \(server_ip, games_finished_count\)`).
		WithArgs(pqtype.Inet{IPNet: testRp.GetIpNet(), Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	for i, c := range shipCells {
		req := mc.Message[mc.ReqAttack]{
			Code:    mc.CodeAttack,
			Payload: mc.ReqAttack{GameUuid: testGameUuid, X: c.X, Y: c.Y},
		}
		if err := testConn.WriteJSON(req); err != nil {
			t.Fatal(err)
		}

		var resp mc.Message[mc.RespAttack]
		if err := testConn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}

		if resp.Code != mc.CodeAttack {
			t.Fatalf("shot %d: expected code: %d\t got: %d", i, mc.CodeAttack, resp.Code)
		}
		if resp.Error != nil {
			t.Fatalf("shot %d: error: %s", i, resp.Error.ErrorDetails)
		}
		if !resp.Payload.Hit {
			t.Fatalf("shot %d at %+v: expected hit", i, c)
		}

		lastShot := i == len(shipCells)-1
		if lastShot {
			if resp.Payload.ComputerShot != nil {
				t.Fatal("winning shot must not carry a counter-shot")
			}
			if !resp.Payload.ShipSunk {
				t.Fatal("winning shot must sink the last ship")
			}

			var respEndGame mc.Message[mc.RespEndGame]
			if err := testConn.ReadJSON(&respEndGame); err != nil {
				t.Fatal(err)
			}
			if respEndGame.Code != mc.CodeEndGame {
				t.Fatalf("expected code: %d\t got: %d", mc.CodeEndGame, respEndGame.Code)
			}
			if respEndGame.Payload.PlayerMatchStatus != mb.PlayerMatchStatusWon {
				t.Fatalf("expected match status: %d\t got: %d",
					mb.PlayerMatchStatusWon, respEndGame.Payload.PlayerMatchStatus)
			}
		} else if resp.Payload.ComputerShot == nil {
			t.Fatalf("shot %d: expected a counter-shot", i)
		}
	}

	if err := testMock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

package api_test

import (
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/websocket"

	"github.com/mahdiarv/seabattle-backend/api"
	"github.com/mahdiarv/seabattle-backend/db/sqlc"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

const testWsUrl = "ws://127.0.0.1:7171/seabattle"

var (
	testConn      *websocket.Conn
	testSessionID string
	testGame      *mb.Game
	testGameUuid  string

	testRp             api.RequestProcessor
	testMock           sqlmock.Sqlmock
	testGameManager    *mb.BattleshipGameManager
	testSessionManager *mc.SeabattleSessionManager

	dialer = websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
)

func TestMain(m *testing.M) {
	db, mock, err := sqlmock.New()
	if err != nil {
		panic(err)
	}
	defer db.Close()
	testMock = mock
	// Analytics writes arrive from different tests than the reads.
	testMock.MatchExpectationsInOrder(false)

	go func() {
		testSessionManager = mc.NewSeabattleSessionManager()
		go testSessionManager.CleanupPeriodically()

		testGameManager = mb.NewBattleshipGameManager()

		testRp = api.NewRequestProcessor(testSessionManager, testGameManager, sqlc.New(db))

		mux := http.NewServeMux()
		mux.Handle("GET /seabattle", testRp)

		log.Println("Listening to port 7171...")
		if err := http.ListenAndServe(":7171", mux); err != nil {
			log.Println(err)
			os.Exit(0)
		}
	}()

	// Give the server time to start
	time.Sleep(time.Second * 2)

	log.Println("dialing...")
	c, _, err := dialer.Dial(testWsUrl, nil)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	testConn = c

	var respSessionId mc.Message[mc.RespSessionId]
	_ = testConn.ReadJSON(&respSessionId)
	testSessionID = respSessionId.Payload.SessionID

	log.Println("session ID:", testSessionID)
	os.Exit(m.Run())
}

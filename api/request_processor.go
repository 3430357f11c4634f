package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/mahdiarv/seabattle-backend/db/sqlc"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	// No routable interface; analytics rows key off loopback then.
	rp.ipnet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}
	return rp
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := rp.sessionManager.GetSessionGame(session); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Read retries and the reconnection grace period are spent;
			// the session connection could not be recovered.
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// Initializes the match: board preset, difficulty, computer
		// fleet and the opponent bound to this session.
		case mc.CodeCreateGame:
			ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
			if rp.q != nil {
				if err := rp.q.AnalyticsIncrementGamesCreatedCount(ctx, serverPqtypeInet); err != nil {
					// for now not killing the game for it
					log.Println(err)
				}
			}

			game, opponent, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
			if respMsg.Error == nil {
				rp.sessionManager.SetSessionGame(session, game)
				rp.sessionManager.SetSessionOpponent(session, opponent)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				cancel()
				break sessionLoop
			}
			cancel()

		// The human fleet arrives here; once it is placed the game
		// starts and the human fires first.
		case mc.CodePlaceShips:
			respMsg := NewRequest(payload).HandlePlaceShips(rp.sessionManager.GetSessionGame(session))

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			respStartGame := mc.NewMessage[mc.NoPayload](mc.CodeStartGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respStartGame, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// One full turn: the human shot resolves on the computer grid
		// and, if the match is still on, the computer answers in the
		// same response.
		case mc.CodeAttack:
			game := rp.sessionManager.GetSessionGame(session)
			respMsg := NewRequest(payload).HandleAttack(game, rp.sessionManager.GetSessionOpponent(session))

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			// This means attack operation did not complete
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if game.IsFinished() {
				ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
				if rp.q != nil {
					if err := rp.q.AnalyticsIncrementGamesFinishedCount(ctx, serverPqtypeInet); err != nil {
						log.Println(err)
					}
				}
				cancel()

				respEndGame := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
				respEndGame.AddPayload(mc.RespEndGame{PlayerMatchStatus: game.HumanPlayer().MatchStatus})
				if err := rp.sessionManager.WriteToSessionConn(session, respEndGame, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}

				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

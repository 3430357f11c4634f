package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	"github.com/mahdiarv/seabattle-backend/models/battleship/ai"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)
	HandleAbnormalClosureSession(session *Session) error

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) ([]byte, error)

	GetSessionGame(session *Session) *mb.Game
	GetSessionOpponent(session *Session) *ai.Opponent

	SetSessionGame(session *Session, game *mb.Game)
	SetSessionOpponent(session *Session, opponent *ai.Opponent)
}

type SeabattleSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*SeabattleSessionManager)(nil)

func NewSeabattleSessionManager() *SeabattleSessionManager {
	initMapSize := 10

	return &SeabattleSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

func (ssm *SeabattleSessionManager) GetSessionGame(session *Session) *mb.Game {
	return session.game
}

func (ssm *SeabattleSessionManager) SetSessionGame(session *Session, game *mb.Game) {
	session.game = game
}

func (ssm *SeabattleSessionManager) GetSessionOpponent(session *Session) *ai.Opponent {
	return session.opponent
}

func (ssm *SeabattleSessionManager) SetSessionOpponent(session *Session, opponent *ai.Opponent) {
	session.opponent = opponent
}

func (ssm *SeabattleSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))

	ssm.mu.Lock()
	ssm.sessions[sessionId] = NewSession(sessionId, conn)
	session := ssm.sessions[sessionId]
	ssm.mu.Unlock()

	return session
}

func (ssm *SeabattleSessionManager) FindSession(sessionId string) (*Session, error) {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	session, prs := ssm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (ssm *SeabattleSessionManager) TerminateSession(session *Session) {
	ssm.mu.Lock()
	delete(ssm.sessions, session.id)
	ssm.mu.Unlock()
}

func (ssm *SeabattleSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

// To ensure that there is no dangling connections,
// server session manager marks the connections with a
// lifetime of more than 20 mins as stale and deletes them.
func (ssm *SeabattleSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(ssm.cleanupInterval)

		ssm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range ssm.sessions {
			if time.Since(session.createdAt) > ssm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(ssm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		ssm.mu.Unlock()
	}
}

// Grace period handling after an abnormal closure. The computer side
// needs no notification; the session just waits for the human to come
// back through the reconnection query before the timer runs out.
func (ssm *SeabattleSessionManager) HandleAbnormalClosureSession(s *Session) error {
	if s.game == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("no game bound to session")
	}

	log.Printf("starting grace period for %s\n", s.id)
	timer := time.NewTimer(gracePeriod)

	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		timer.Stop()
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (ssm *SeabattleSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		return err
	}

	if connErr.Code() == ConnLoopAbnormalClosureRetry {
		if err := ssm.HandleAbnormalClosureSession(session); err != nil {
			return err
		}
		// Reconnected; one more try on the fresh conn.
		return session.writeToConnWithRetry(msg, msgType)
	}

	return connErr
}

func (ssm *SeabattleSessionManager) ReadFromSessionConn(session *Session) ([]byte, error) {
	payload, err := session.readFromConnWithRetry()
	if err == nil {
		return payload, nil
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		return nil, err
	}

	if connErr.Code() == ConnLoopAbnormalClosureRetry {
		if err := ssm.HandleAbnormalClosureSession(session); err != nil {
			return nil, err
		}
		return session.readFromConnWithRetry()
	}

	return nil, connErr
}

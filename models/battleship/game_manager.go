package battleship

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

type GameManager interface {
	CreateGame(difficulty, preset uint8) (*Game, error)
	FindGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	rng   *rand.Rand
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateGame allocates the match and drops the computer fleet on its
// grid. The human fleet is placed later through the place-ships request.
func (bgm *BattleshipGameManager) CreateGame(difficulty, preset uint8) (*Game, error) {
	if !IsDifficultyValid(difficulty) {
		return nil, cerr.ErrInvalidGameDifficulty()
	}

	cfg, err := ConfigForPreset(preset)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := uuid.NewString()[:6]
	game := newGame(difficulty, gameUuid, cfg)
	game.ComputerPlayer().PlaceFleetRandom(cfg, bgm.rng)

	bgm.games[gameUuid] = game
	return game, nil
}

func (bgm *BattleshipGameManager) FindGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()

	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

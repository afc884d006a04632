package model

import (
	"errors"
	"sync"
	"time"
)

var ErrAlreadyQueued = errors.New("game already queued")

type QueuedGame struct {
	GameID   string
	JoinedAt time.Time
}

// Queue holds games waiting for the computer's reply, oldest first.
// A game is queued at most once.
type Queue struct {
	games []QueuedGame
	mu    sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		games: []QueuedGame{},
	}
}

func (q *Queue) Push(gameID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, g := range q.games {
		if g.GameID == gameID {
			return ErrAlreadyQueued
		}
	}

	q.games = append(q.games, QueuedGame{
		GameID:   gameID,
		JoinedAt: time.Now(),
	})
	return nil
}

// Pop removes the game that has been waiting longest.
func (q *Queue) Pop() (QueuedGame, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.games) == 0 {
		return QueuedGame{}, false
	}
	next := q.games[0]
	q.games = q.games[1:]
	return next, true
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.games)
}

// Package room tracks live table state -- seats, turn order, round wind --
// and settles wins by handing the seat's hand to the mahjong scorer.
package room

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"scoreserver/internal/mahjong"
)

var ErrSeatNotFound = errors.New("room: seat not found")

// Room is one table: four seats, the shared round state, and the turn
// machine. Game logic outside of scoring (claims, discards, reconnection
// routing) is driven by the transport layer against this state.
type Room struct {
	ID          string
	Seats       [4]*Seat
	RoundWind   string
	RoundNumber int
	DealerIndex int
	Honba       int
	Turn        *TurnManager
	CreatedAt   time.Time

	mu sync.RWMutex
}

// GenerateID mints a room identifier in the same room_<unix>_<hex> shape
// used across the stack's other room managers.
func GenerateID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("room_%d_%s", time.Now().Unix(), hex.EncodeToString(buf))
}

// New seats users (in seat order) at a fresh room with the given starting
// points and round wind.
func New(userIDs [4]string, initialPoints int, roundWind string) *Room {
	r := &Room{
		ID:        GenerateID(),
		RoundWind: roundWind,
		Turn:      NewTurnManager(),
		CreatedAt: time.Now(),
	}
	for i, userID := range userIDs {
		r.Seats[i] = NewSeat(userID, i, initialPoints)
	}
	return r
}

func (r *Room) Seat(index int) (*Seat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= 4 {
		return nil, ErrSeatNotFound
	}
	return r.Seats[index], nil
}

func (r *Room) SeatByUser(userID string) (*Seat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.Seats {
		if s != nil && s.UserID == userID {
			return s, nil
		}
	}
	return nil, ErrSeatNotFound
}

// Settle scores seatIndex's current hand against the room's round state and
// the given yaku registry (the deployment's RulesConf.Registry()). It does
// not apply or persist the resulting points transfer -- callers feed the
// returned mahjong.Detail to points.Settle themselves, since only they know
// whether this was a ron or a tsumo and who pays.
func (r *Room) Settle(seatIndex int, winTile string, settings mahjong.Settings, registry []mahjong.Entry) (mahjong.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seatIndex < 0 || seatIndex >= 4 {
		return mahjong.Detail{}, ErrSeatNotFound
	}
	seat := r.Seats[seatIndex]
	if seat == nil {
		return mahjong.Detail{}, ErrSeatNotFound
	}

	settings.PlayerWind = seatWind(seatIndex, r.DealerIndex)
	settings.RoundWind = r.RoundWind
	settings.RoundNumber = r.RoundNumber

	return mahjong.ScoreDetailedWithRegistry(seat.Hand, seat.Melds, winTile, settings, registry)
}

// seatWind derives a seat's own wind from its offset behind the dealer:
// the dealer is always East regardless of the round wind.
func seatWind(seatIndex, dealerIndex int) string {
	winds := [4]string{"1z", "2z", "3z", "4z"}
	offset := (seatIndex - dealerIndex + 4) % 4
	return winds[offset]
}

func (r *Room) Close() {}

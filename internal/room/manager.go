package room

import (
	"sync"
)

// Manager indexes live rooms by ID and tracks which room each user is
// currently seated in, so a reconnecting user's transport can be routed
// back to the right table without a lookup through every room.
type Manager struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	userRoomID map[string]string
}

func NewManager() *Manager {
	return &Manager{
		rooms:      make(map[string]*Room),
		userRoomID: make(map[string]string),
	}
}

// Create seats userIDs at a new room and indexes it.
func (m *Manager) Create(userIDs [4]string, initialPoints int, roundWind string) *Room {
	r := New(userIDs, initialPoints, roundWind)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rooms[r.ID] = r
	for _, userID := range userIDs {
		m.userRoomID[userID] = r.ID
	}
	return r
}

func (m *Manager) Get(roomID string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rooms[roomID]
	return r, ok
}

func (m *Manager) GetByUser(userID string) (*Room, bool) {
	m.mu.RLock()
	roomID, ok := m.userRoomID[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return m.Get(roomID)
}

// Delete removes a room and every seat's membership entry. It does not
// close the room's transport connections -- callers do that first.
func (m *Manager) Delete(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[roomID]
	if !ok {
		return
	}
	for _, seat := range r.Seats {
		if seat != nil {
			delete(m.userRoomID, seat.UserID)
		}
	}
	delete(m.rooms, roomID)
}

type Stats struct {
	RoomCount   int
	PlayerCount int
}

func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		RoomCount:   len(m.rooms),
		PlayerCount: len(m.userRoomID),
	}
}

func (m *Manager) All() []*Room {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

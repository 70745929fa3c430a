package room

import "fmt"

// TurnState is the phase of the current turn: who may act, and on what.
type TurnState int

const (
	TurnIdle           TurnState = iota // waiting for the round to start
	TurnWaitMain                        // waiting for the current seat to discard or declare riichi
	TurnSelecting                       // collecting chi/pon/kan/ron claims from other seats
	TurnWaitReactions                   // waiting on reactions to a declared claim
	TurnApplyOperation                  // a meld/discard is being applied to seat state
)

// TurnManager tracks whose turn it is and what the table is waiting on. It
// does not own any network timers or seat deadlines.
type TurnManager struct {
	pointer int
	state   TurnState
}

func NewTurnManager() *TurnManager {
	return &TurnManager{state: TurnIdle}
}

func (tm *TurnManager) Current() int {
	return tm.pointer
}

func (tm *TurnManager) State() TurnState {
	return tm.state
}

// NextTurn advances to the next seat and returns its index.
func (tm *TurnManager) NextTurn() int {
	tm.pointer = (tm.pointer + 1) % 4
	return tm.pointer
}

// EnterDropPhase moves the table into TurnWaitMain for seatIndex -- the
// point at which that seat may discard or declare riichi.
func (tm *TurnManager) EnterDropPhase(seatIndex int) error {
	if seatIndex < 0 || seatIndex >= 4 {
		return fmt.Errorf("room: invalid seat index %d", seatIndex)
	}
	tm.pointer = seatIndex
	tm.state = TurnWaitMain
	return nil
}

// EnterSelectingPhase opens the window during which other seats may claim
// a just-discarded tile (chi/pon/kan/ron).
func (tm *TurnManager) EnterSelectingPhase() {
	tm.state = TurnSelecting
}

func (tm *TurnManager) EnterReactionPhase() {
	tm.state = TurnWaitReactions
}

func (tm *TurnManager) EnterApplyPhase() {
	tm.state = TurnApplyOperation
}

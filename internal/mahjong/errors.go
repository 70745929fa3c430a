package mahjong

import "errors"

// Tile/set parsing errors.
var (
	ErrInvalidTile = errors.New("mahjong: invalid tile code")
	ErrInvalidSet  = errors.New("mahjong: invalid exposed set")
)

// ErrNoYaku is returned by Score when a hand forms at least one structural
// partition but no registered yaku applies to any of them. Dora alone never
// produces a win, so a hand with dora and nothing else also returns this.
var ErrNoYaku = errors.New("mahjong: no yaku")

package points

import "scoreserver/internal/mahjong"

// Fu computes the fu value of a scored hand from its winning partition,
// completing the pinfu/pair-fu/wait-fu cases the engine this grew out of
// left as open TODOs because it never kept the structural decomposition
// around after yaku evaluation.
func Fu(detail mahjong.Detail, ron bool) int {
	if isPinfu(detail) {
		if ron {
			return 30
		}
		return 20
	}

	fu := 20
	if !ron {
		fu += 2 // tsumo
	}
	if ron && detail.Concealed {
		fu += 10 // menzen ron
	}

	fu += pairFu(detail)
	fu += meldFu(detail)
	fu += waitFu(detail)

	return roundUpTo10(fu)
}

// isPinfu mirrors the pinfu predicate's closed-hand, four-sequence,
// non-yakuhai-pair shape, without the predicate's deliberate
// over-acceptance of every sequence's two-sided wait -- fu calculation
// cares only about the wait on the actual winning tile.
func isPinfu(detail mahjong.Detail) bool {
	if pairFu(detail) != 0 {
		return false // yakuhai pair
	}
	if !detail.Concealed || len(detail.Partition) != 5 {
		return false
	}
	hasPair := false
	for _, s := range detail.Partition {
		switch s.Kind {
		case mahjong.KindPair:
			if hasPair {
				return false
			}
			hasPair = true
		case mahjong.KindSequence:
		default:
			return false
		}
	}
	return waitFu(detail) == 0
}

// pairFu adds 2 for a yakuhai pair (a dragon, the seat wind, or the round
// wind), 4 if the pair is double-counted as both seat and round wind (the
// East seat in an East round, e.g.).
func pairFu(detail mahjong.Detail) int {
	for _, s := range detail.Partition {
		if s.Kind != mahjong.KindPair {
			continue
		}
		fu := 0
		if s.Start == mahjong.White || s.Start == mahjong.Green || s.Start == mahjong.Red {
			fu += 2
		}
		if s.Start == detail.PlayerWindIndex {
			fu += 2
		}
		if s.Start == detail.RoundWindIndex {
			fu += 2
		}
		return fu
	}
	return 0
}

// meldFu sums the triplet/quad fu table: open vs. concealed, terminal/honor
// vs. simple.
func meldFu(detail mahjong.Detail) int {
	fu := 0
	for _, s := range detail.Partition {
		switch s.Kind {
		case mahjong.KindTriplet:
			terminal := isTerminalOrHonor(s.Start)
			if s.Exposed {
				fu += pick(terminal, 4, 2)
			} else {
				fu += pick(terminal, 8, 4)
			}
		case mahjong.KindQuad:
			terminal := isTerminalOrHonor(s.Start)
			if s.Concealed {
				fu += pick(terminal, 32, 16)
			} else {
				fu += pick(terminal, 16, 8)
			}
		}
	}
	return fu
}

// waitFu adds 2 fu for an edge wait (12-3 waiting on 3, or 89-7 waiting on
// 7), a closed wait (a middle tile of a run), or a pair wait (tanki); a
// two-sided run wait and a shanpon (dual pair-or-triplet) wait add 0.
//
// The winning tile's value can sit at more than one position across the
// partition's sequences (e.g. 1m2m3m + 2m3m4m both touch "2m"). Real fu
// rules credit the player with whichever reading of the wait is cheapest,
// so this takes the minimum fu over every set the winning tile belongs to
// -- the same across-all-sequences scan predicatePinfu already relies on.
func waitFu(detail mahjong.Detail) int {
	winTile := detail.WinTile
	best := -1

	consider := func(fu int) {
		if best == -1 || fu < best {
			best = fu
		}
	}

	for _, s := range detail.Partition {
		switch s.Kind {
		case mahjong.KindSequence:
			lo, mid, hi := s.Start, s.Start+1, s.Start+2
			switch winTile {
			case mid:
				consider(2) // kanchan
			case lo:
				if isEdgeLow(s) {
					consider(2) // penchan: 8-9 held, won on the 7
				} else {
					consider(0) // ryanmen
				}
			case hi:
				if isEdgeHigh(s) {
					consider(2) // penchan: 1-2 held, won on the 3
				} else {
					consider(0) // ryanmen
				}
			}
		case mahjong.KindPair:
			if s.Start == winTile {
				consider(2) // tanki
			}
		}
	}

	if best == -1 {
		return 0 // shanpon, or the tile completed a triplet/quad
	}
	return best
}

// isEdgeHigh reports whether a sequence's low tile is 1 (a 1-2-3 run,
// so winning on the 3 via the low end is a penchan, not ryanmen).
func isEdgeHigh(s mahjong.Set) bool {
	return s.Start%9 == 0
}

// isEdgeLow reports whether a sequence's low tile is 7 (a 7-8-9 run,
// so winning on the 7 via the high end is a penchan, not ryanmen).
func isEdgeLow(s mahjong.Set) bool {
	return s.Start%9 == 6
}

func isTerminalOrHonor(tile int) bool {
	if tile >= 27 {
		return true
	}
	rank := tile % 9
	return rank == 0 || rank == 8
}

func pick(cond bool, ifTrue, ifFalse int) int {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func roundUpTo10(x int) int {
	if x%10 == 0 {
		return x
	}
	return (x/10 + 1) * 10
}

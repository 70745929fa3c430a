package mahjong

import "fmt"

// IngestExposedSet classifies a raw exposed meld (tile indices as called,
// the concealed tile of a closed kan represented by the Concealed
// sentinel) into a tagged Set.
//
// Length 3 with all three tiles equal -> Triplet (exposed).
// Length 3 with three distinct consecutive ranks -> Sequence (exposed),
// Start is the minimum of the three.
// Length 4 containing Concealed -> Quad, Concealed=true (a self-drawn kan
// that is publicly declared but scores as closed).
// Length 4 without Concealed -> Quad, Exposed=true.
// Anything else fails with ErrInvalidSet.
func IngestExposedSet(raw []int) (Set, error) {
	switch len(raw) {
	case 3:
		if raw[0] == raw[1] && raw[1] == raw[2] {
			return Set{Kind: KindTriplet, Start: raw[0], Exposed: true}, nil
		}
		lo := raw[0]
		for _, t := range raw[1:] {
			if t < lo {
				lo = t
			}
		}
		seen := map[int]bool{raw[0]: true, raw[1]: true, raw[2]: true}
		if len(seen) == 3 && raw[0] != Concealed && raw[1] != Concealed && raw[2] != Concealed &&
			lo <= 26 && lo%9 <= 6 && seen[lo] && seen[lo+1] && seen[lo+2] {
			return Set{Kind: KindSequence, Start: lo, Exposed: true}, nil
		}
		return Set{}, fmt.Errorf("%w: %v", ErrInvalidSet, raw)
	case 4:
		hasConcealed := false
		tile := -1
		for _, t := range raw {
			if t == Concealed {
				hasConcealed = true
				continue
			}
			if tile == -1 {
				tile = t
			} else if tile != t {
				return Set{}, fmt.Errorf("%w: %v", ErrInvalidSet, raw)
			}
		}
		if tile == -1 {
			return Set{}, fmt.Errorf("%w: %v", ErrInvalidSet, raw)
		}
		if hasConcealed {
			return Set{Kind: KindQuad, Start: tile, Concealed: true}, nil
		}
		return Set{Kind: KindQuad, Start: tile, Exposed: true}, nil
	default:
		return Set{}, fmt.Errorf("%w: %v", ErrInvalidSet, raw)
	}
}

// IngestExposedSets applies IngestExposedSet element-wise.
func IngestExposedSets(raws [][]int) ([]Set, error) {
	out := make([]Set, len(raws))
	for i, raw := range raws {
		s, err := IngestExposedSet(raw)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func countTiles(hand []int) [34]int {
	var counts [34]int
	for _, t := range hand {
		if t >= 0 && t < 34 {
			counts[t]++
		}
	}
	return counts
}

// SplitSevenPairs returns at most one seven-pairs partition of the closed
// hand. When allowDuplicatePairs is false, a hand holding a concealed quad
// (four of the same tile) in the closed portion does not qualify. When
// allowExposed and allowDuplicatePairs are both true, a concealed quad
// among the exposed sets counts as two pairs of its tile. The standard
// caller passes allowDuplicatePairs=false, allowExposed=false.
func SplitSevenPairs(hand []int, exposed []Set, allowDuplicatePairs, allowExposed bool) []Partition {
	counts := countTiles(hand)

	var pairs Partition
	for tile, count := range counts {
		if count == 0 {
			continue
		}
		if count == 4 && !allowDuplicatePairs {
			return nil
		}
		for i := 0; i < count/2; i++ {
			pairs = append(pairs, Set{Kind: KindPair, Start: tile})
		}
	}

	if allowExposed && allowDuplicatePairs {
		for _, s := range exposed {
			if s.Kind == KindQuad && s.Concealed {
				pairs = append(pairs, Set{Kind: KindPair, Start: s.Start})
				pairs = append(pairs, Set{Kind: KindPair, Start: s.Start})
			}
		}
	}

	if len(pairs) < 7 {
		return nil
	}

	result := clonePartition(pairs[:7])
	sortPartition(result)
	return []Partition{result}
}

// SplitStandard returns every distinct "one pair + four sets" partition of
// the closed hand, each combined with the exposed sets kept as-is.
func SplitStandard(hand []int, exposed []Set) []Partition {
	counts := countTiles(hand)
	needed := 4 - len(exposed)
	if needed < 0 {
		return nil
	}

	var results []Partition
	var chosen Partition

	// afterSequence is set when the caller just took a sequence starting at
	// lowerBound; a triplet at that same tile is then skipped, since taking
	// the triplet first already reaches that partition.
	var findMelds func(lowerBound, remaining int, afterSequence bool)
	findMelds = func(lowerBound, remaining int, afterSequence bool) {
		if remaining == 0 {
			full := make(Partition, 0, len(chosen)+len(exposed))
			full = append(full, chosen...)
			full = append(full, exposed...)
			sortPartition(full)
			results = append(results, full)
			return
		}
		for tile := lowerBound; tile < 34; tile++ {
			if counts[tile] == 0 {
				continue
			}
			if counts[tile] >= 3 && !(afterSequence && tile == lowerBound) {
				counts[tile] -= 3
				chosen = append(chosen, Set{Kind: KindTriplet, Start: tile})
				findMelds(tile, remaining-1, false)
				chosen = chosen[:len(chosen)-1]
				counts[tile] += 3
			}
			if tile <= 26 && tile%9 <= 6 && counts[tile+1] > 0 && counts[tile+2] > 0 {
				counts[tile]--
				counts[tile+1]--
				counts[tile+2]--
				chosen = append(chosen, Set{Kind: KindSequence, Start: tile})
				findMelds(tile, remaining-1, true)
				chosen = chosen[:len(chosen)-1]
				counts[tile]++
				counts[tile+1]++
				counts[tile+2]++
			}
		}
	}

	for tile := 0; tile < 34; tile++ {
		if counts[tile] < 2 {
			continue
		}
		counts[tile] -= 2
		chosen = append(chosen, Set{Kind: KindPair, Start: tile})
		findMelds(0, needed, false)
		chosen = chosen[:len(chosen)-1]
		counts[tile] += 2
	}

	return results
}

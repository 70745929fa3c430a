package mahjong

import "sort"

// Kind tags a Set's structural role within a partition.
type Kind int

const (
	KindPair Kind = iota
	KindSequence
	KindTriplet
	KindQuad
)

// Set is one partition element: a Pair, Sequence, Triplet or Quad.
//
// Start is the tagged payload: for Pair/Triplet/Quad it is the repeated
// tile index; for Sequence it is the index of the lowest tile (the other
// two are Start+1, Start+2).
//
// Exposed marks a set that came from a publicly declared meld. Concealed
// marks a Quad formed from a self-drawn/closed kan even though it is
// represented among the exposed sets -- this is the only case where
// Exposed and "counts as closed" diverge (see IsFullyConcealed).
type Set struct {
	Kind      Kind
	Start     int
	Exposed   bool
	Concealed bool
}

// Len returns the number of tiles in the set (2 for Pair, 3 for
// Sequence/Triplet, 4 for Quad).
func (s Set) Len() int {
	switch s.Kind {
	case KindPair:
		return 2
	case KindSequence, KindTriplet:
		return 3
	case KindQuad:
		return 4
	default:
		return 0
	}
}

// Tiles expands the set into its constituent tile indices.
func (s Set) Tiles() []int {
	out := make([]int, s.Len())
	for i := range out {
		if s.Kind == KindSequence {
			out[i] = s.Start + i
		} else {
			out[i] = s.Start
		}
	}
	return out
}

// kindRank orders Sequence ahead of Triplet at equal length/start, per the
// canonical ordering in the spec (needed only for deterministic output and
// dedup, never for scoring).
func kindRank(k Kind) int {
	if k == KindSequence {
		return 0
	}
	return 1
}

// Less implements the total ordering on sets: by length ascending, then by
// starting tile index ascending, then Sequence before Triplet.
func Less(a, b Set) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return kindRank(a.Kind) < kindRank(b.Kind)
}

// Partition is a full structural decomposition of a winning hand: either
// seven pairs, or one pair plus four non-pair sets.
type Partition []Set

// sortPartition orders a standard partition as pair-first, then ascending
// per Less; seven-pairs partitions are sorted the same way since a Pair
// always sorts first by length.
func sortPartition(p Partition) {
	sort.SliceStable(p, func(i, j int) bool { return Less(p[i], p[j]) })
}

// clonePartition returns an independent copy, used when appending a
// partition under construction to a results slice.
func clonePartition(p Partition) Partition {
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

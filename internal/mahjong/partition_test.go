package mahjong

import (
	"reflect"
	"testing"
)

func tilesOf(sets Partition) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = s.Tiles()
	}
	return out
}

func TestSplitStandardMatchesReference(t *testing.T) {
	hand := []int{1, 1, 2, 2, 3, 3, 4, 4}
	exposed, err := IngestExposedSets([][]int{{6, 7, 8}, {15, 15, 15}})
	if err != nil {
		t.Fatalf("IngestExposedSets: %v", err)
	}

	got := SplitStandard(hand, exposed)
	want := [][][]int{
		{{1, 1}, {2, 3, 4}, {2, 3, 4}, {6, 7, 8}, {15, 15, 15}},
		{{4, 4}, {1, 2, 3}, {1, 2, 3}, {6, 7, 8}, {15, 15, 15}},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d partitions, want %d: %v", len(got), len(want), got)
	}
	for i, p := range got {
		if gotTiles := tilesOf(p); !reflect.DeepEqual(gotTiles, want[i]) {
			t.Errorf("partition %d = %v, want %v", i, gotTiles, want[i])
		}
	}
}

func TestSplitStandardReconstructsMultiset(t *testing.T) {
	hand := []int{27, 27, 0, 1, 2, 9, 10, 11, 18, 19, 20, 3, 3, 3}
	partitions := SplitStandard(hand, nil)
	if len(partitions) == 0 {
		t.Fatal("expected at least one partition")
	}
	for _, p := range partitions {
		var counts [34]int
		for _, s := range p {
			for _, tile := range s.Tiles() {
				counts[tile]++
			}
		}
		want := countTiles(hand)
		if counts != want {
			t.Errorf("partition %v does not reconstruct input multiset", p)
		}
	}
}

func TestSplitStandardSequenceNeverCrossesSuit(t *testing.T) {
	// 789m 789m 1m1m 111p 111s -- a sequence candidate starting at the
	// manzu/pinzu boundary (tile 7 or 8) must never be emitted.
	hand := []int{6, 7, 8, 6, 7, 8, 0, 0, 9, 9, 9, 18, 18, 18}
	partitions := SplitStandard(hand, nil)
	if len(partitions) == 0 {
		t.Fatal("expected at least one partition")
	}
	for _, p := range partitions {
		for _, s := range p {
			if s.Kind != KindSequence {
				continue
			}
			if s.Start < 0 || s.Start > 26 || s.Start%9 > 6 {
				t.Errorf("sequence with invalid start %d", s.Start)
			}
		}
	}
}

func TestSplitSevenPairs(t *testing.T) {
	hand := []int{0, 0, 1, 1, 2, 2, 9, 9, 10, 10, 18, 18, 27, 27}
	got := SplitSevenPairs(hand, nil, false, false)
	if len(got) != 1 {
		t.Fatalf("expected exactly one seven-pairs partition, got %d", len(got))
	}
	if len(got[0]) != 7 {
		t.Fatalf("expected 7 pairs, got %d", len(got[0]))
	}
	seen := map[int]bool{}
	for _, s := range got[0] {
		if s.Kind != KindPair {
			t.Errorf("expected all Pair sets, got %v", s.Kind)
		}
		if seen[s.Start] {
			t.Errorf("duplicate pair index %d", s.Start)
		}
		seen[s.Start] = true
	}
}

func TestSplitSevenPairsRejectsQuad(t *testing.T) {
	// Four of a kind plus five other pairs reaches seven pairs only by
	// counting the four as two pairs, which is disallowed here.
	hand := []int{0, 0, 0, 0, 1, 1, 2, 2, 9, 9, 10, 10, 18, 18}
	got := SplitSevenPairs(hand, nil, false, false)
	if got != nil {
		t.Fatalf("expected no partition when a tile repeats 4 times, got %v", got)
	}
}

func TestSplitSevenPairsNotEnoughPairs(t *testing.T) {
	hand := []int{0, 0, 1, 1, 2, 2, 9, 9, 10, 10, 18, 27}
	if got := SplitSevenPairs(hand, nil, false, false); got != nil {
		t.Fatalf("expected no partition with only 5 pairs, got %v", got)
	}
}

func TestIngestExposedSetTriplet(t *testing.T) {
	s, err := IngestExposedSet([]int{5, 5, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != KindTriplet || s.Start != 5 || !s.Exposed {
		t.Errorf("got %+v", s)
	}
}

func TestIngestExposedSetSequence(t *testing.T) {
	s, err := IngestExposedSet([]int{7, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != KindSequence || s.Start != 5 || !s.Exposed {
		t.Errorf("got %+v", s)
	}
}

func TestIngestExposedSetConcealedQuad(t *testing.T) {
	s, err := IngestExposedSet([]int{Concealed, 9, 9, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != KindQuad || s.Start != 9 || !s.Concealed || s.Exposed {
		t.Errorf("got %+v", s)
	}
}

func TestIngestExposedSetOpenQuad(t *testing.T) {
	s, err := IngestExposedSet([]int{9, 9, 9, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != KindQuad || s.Start != 9 || s.Concealed || !s.Exposed {
		t.Errorf("got %+v", s)
	}
}

func TestIngestExposedSetInvalid(t *testing.T) {
	for _, raw := range [][]int{{1, 2}, {1, 2, 4}, {1, 1, 2, 3}, {}} {
		if _, err := IngestExposedSet(raw); err == nil {
			t.Errorf("IngestExposedSet(%v): expected error", raw)
		}
	}
}

package mahjong

import (
	"errors"
	"sort"
	"testing"
)

func hasYaku(yakus []YakuHan, name string, han int) bool {
	for _, y := range yakus {
		if y.Name == name && y.Han == han {
			return true
		}
	}
	return false
}

func TestScorePinfuClosedRiichi(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "5s"}
	settings := Settings{
		PlayerWind: "2z",
		RoundWind:  "3z",
		Dora:       []string{"1z"},
		UraDora:    []string{"1z"},
		Riichi:     1,
	}

	result, err := Score(hand, nil, "2m", settings)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if !hasYaku(result.Yakus, "pinfu", 1) {
		t.Errorf("expected pinfu in yakus, got %v", result.Yakus)
	}
	if !hasYaku(result.Yakus, "riichi", 1) {
		t.Errorf("expected riichi in yakus, got %v", result.Yakus)
	}
	if result.Han < 2 {
		t.Errorf("expected han >= 2, got %d", result.Han)
	}
}

func TestScorePlayerWindTriplet(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "1z", "1z", "1z"}
	settings := Settings{
		PlayerWind: "1z",
		RoundWind:  "1z",
		Dora:       []string{"1z"},
		UraDora:    []string{"1z"},
	}

	result, err := Score(hand, nil, "2m", settings)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if !hasYaku(result.Yakus, "yakuhai.player_wind", 1) {
		t.Errorf("expected yakuhai.player_wind in yakus, got %v", result.Yakus)
	}
	if !hasYaku(result.Yakus, "yakuhai.round_wind", 1) {
		t.Errorf("expected yakuhai.round_wind in yakus, got %v", result.Yakus)
	}
	if !hasYaku(result.Yakus, "yaku.dora", 3) {
		t.Errorf("expected three dora (the held 1z triplet), got %v", result.Yakus)
	}
}

func TestScoreYakuhaiOnConcealedQuad(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s"}
	exposed := [][]string{{"-", "2z", "2z", "2z"}}
	settings := Settings{PlayerWind: "2z", RoundWind: "1z"}

	result, err := Score(hand, exposed, "2m", settings)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if !hasYaku(result.Yakus, "yakuhai.player_wind", 1) {
		t.Errorf("expected yakuhai.player_wind in yakus, got %v", result.Yakus)
	}
}

func TestScoreTanyaoOpen(t *testing.T) {
	hand := []string{"2m", "3m", "4m", "5p", "6p", "7p", "3s", "4s", "5s", "6s", "6s"}
	exposed := [][]string{{"2s", "3s", "4s"}}
	settings := Settings{PlayerWind: "1z", RoundWind: "1z"}

	result, err := Score(hand, exposed, "6s", settings)
	if err != nil {
		t.Fatalf("Score: unexpected error: %v", err)
	}
	if !hasYaku(result.Yakus, "tanyao", 1) {
		t.Errorf("expected tanyao in yakus, got %v", result.Yakus)
	}
}

func TestScoreNoYakuThirteenOrphansUnregistered(t *testing.T) {
	hand := []string{"1m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z", "5z", "6z", "7z"}
	settings := Settings{PlayerWind: "1z", RoundWind: "1z"}

	_, err := Score(hand, nil, "7z", settings)
	if !errors.Is(err, ErrNoYaku) {
		t.Fatalf("expected ErrNoYaku, got %v", err)
	}
}

func TestScoreDoraAloneInsufficient(t *testing.T) {
	// A plain non-yaku standard hand: terminal triplets and a non-seat,
	// non-round wind triplet block tanyao and yakuhai alike; no riichi,
	// no pinfu (triplets present), and won on a discard so the closed
	// self-draw yaku does not apply -- but several dora present.
	hand := []string{"1m", "1m", "1m", "9p", "9p", "9p", "1s", "2s", "3s", "4z", "4z", "4z", "2m"}
	settings := Settings{
		PlayerWind: "1z",
		RoundWind:  "1z",
		Dora:       []string{"1m", "9p", "4z"},
		Ron:        true,
	}

	_, err := Score(hand, nil, "2m", settings)
	if !errors.Is(err, ErrNoYaku) {
		t.Fatalf("expected ErrNoYaku despite dora, got %v", err)
	}
}

func TestScoreDeterministicAndOrderInsensitive(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "5s"}
	settings := Settings{PlayerWind: "2z", RoundWind: "3z", Riichi: 1}

	first, err := Score(hand, nil, "2m", settings)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	second, err := Score(hand, nil, "2m", settings)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if first.Han != second.Han || first.Yakuman != second.Yakuman {
		t.Fatalf("Score is not deterministic: %+v vs %+v", first, second)
	}

	shuffled := append([]string{}, hand...)
	sort.Sort(sort.Reverse(sort.StringSlice(shuffled)))
	reordered, err := Score(shuffled, nil, "2m", settings)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if reordered.Han != first.Han {
		t.Fatalf("Score is sensitive to hand ordering: %d vs %d", reordered.Han, first.Han)
	}
}

func TestScoreInvalidTile(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "8z"}
	_, err := Score(hand, nil, "2m", Settings{PlayerWind: "1z", RoundWind: "1z"})
	if !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("expected ErrInvalidTile, got %v", err)
	}
}

func TestScoreInvalidSet(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s"}
	exposed := [][]string{{"2z", "3z", "4z", "5z"}}
	_, err := Score(hand, exposed, "2m", Settings{PlayerWind: "1z", RoundWind: "1z"})
	if !errors.Is(err, ErrInvalidSet) {
		t.Fatalf("expected ErrInvalidSet, got %v", err)
	}
}

func TestSplitIsUnitTestableIndependently(t *testing.T) {
	// Split takes no winning tile, so the hand passed in is the full
	// fourteen tiles (the 2m win included).
	hand := []string{"1m", "2m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "5s"}
	partitions, err := Split(hand, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(partitions) == 0 {
		t.Fatal("expected at least one partition")
	}
}

package points

import (
	"testing"

	"scoreserver/internal/mahjong"
)

func TestFuPinfuRon(t *testing.T) {
	hand := []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "5s"}
	settings := mahjong.Settings{PlayerWind: "2z", RoundWind: "3z"}

	detail, err := mahjong.ScoreDetailed(hand, nil, "2m", settings)
	if err != nil {
		t.Fatalf("ScoreDetailed: %v", err)
	}

	if fu := Fu(detail, true); fu != 30 {
		t.Errorf("pinfu ron fu = %d, want 30", fu)
	}
	if fu := Fu(detail, false); fu != 20 {
		t.Errorf("pinfu tsumo fu = %d, want 20", fu)
	}
}

func TestFuTripletsAndKanchanWait(t *testing.T) {
	// Open hand: a called pon of the seat wind (minkou, honor, +4 fu, and
	// the hand's only yaku), a concealed triplet of 2s (ankou, simple,
	// +4), a plain terminal pair (no pair fu), a sequence won on its
	// middle tile (kanchan, +2), and a filler sequence -- no pinfu, since
	// triplets are present and the hand is open.
	hand := []string{"2s", "2s", "2s", "9m", "9m", "3p", "4p", "5p", "6m", "7m", "8m"}
	exposed := [][]string{{"1z", "1z", "1z"}}
	settings := mahjong.Settings{PlayerWind: "1z", RoundWind: "2z"}

	detail, err := mahjong.ScoreDetailed(hand, exposed, "4p", settings)
	if err != nil {
		t.Fatalf("ScoreDetailed: %v", err)
	}

	fu := Fu(detail, true)
	// 20 base + 4 (minkou 1z, honor) + 4 (ankou 2s, simple)
	// + 0 (pair 9m, non-yakuhai) + 2 (kanchan on 4p) = 30.
	if fu != 30 {
		t.Errorf("fu = %d, want 30", fu)
	}
}

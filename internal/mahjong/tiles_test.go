package mahjong

import "testing"

func TestEncodeRoundTrips(t *testing.T) {
	cases := map[string]int{
		"1m": 0, "2m": 1, "3m": 2, "4m": 3, "5m": 4, "6m": 5, "7m": 6, "8m": 7, "9m": 8,
		"1p": 9, "2p": 10, "3p": 11, "4p": 12, "5p": 13, "6p": 14, "7p": 15, "8p": 16, "9p": 17,
		"1s": 18, "2s": 19, "3s": 20, "4s": 21, "5s": 22, "6s": 23, "7s": 24, "8s": 25, "9s": 26,
		"1z": 27, "2z": 28, "3z": 29, "4z": 30, "5z": 33, "6z": 32, "7z": 31,
		"0m": 4, "0p": 13, "0s": 22,
	}
	for code, want := range cases {
		got, err := Encode(code)
		if err != nil {
			t.Fatalf("Encode(%q): unexpected error: %v", code, err)
		}
		if got != want {
			t.Errorf("Encode(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestEncodeConcealedSentinel(t *testing.T) {
	got, err := Encode("-")
	if err != nil {
		t.Fatalf("Encode(\"-\"): unexpected error: %v", err)
	}
	if got != Concealed {
		t.Errorf("Encode(\"-\") = %d, want %d", got, Concealed)
	}
}

func TestEncodeInvalid(t *testing.T) {
	for _, code := range []string{"8z", "0z", "xm", "10m", "", "5"} {
		if _, err := Encode(code); err == nil {
			t.Errorf("Encode(%q): expected error, got nil", code)
		}
	}
}

func TestEncodeHandPropagatesError(t *testing.T) {
	_, err := EncodeHand([]string{"1m", "2m", "8z"})
	if err == nil {
		t.Fatal("expected error for invalid tile in hand")
	}
}

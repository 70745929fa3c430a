package room

import (
	"testing"

	"scoreserver/internal/mahjong"
)

func TestNewSeatsInOrder(t *testing.T) {
	r := New([4]string{"a", "b", "c", "d"}, 25000, "1z")

	for i, userID := range []string{"a", "b", "c", "d"} {
		seat, err := r.Seat(i)
		if err != nil {
			t.Fatalf("Seat(%d): %v", i, err)
		}
		if seat.UserID != userID {
			t.Errorf("seat %d: got user %q, want %q", i, seat.UserID, userID)
		}
		if seat.Points != 25000 {
			t.Errorf("seat %d: got points %d, want 25000", i, seat.Points)
		}
	}
}

func TestSeatByUser(t *testing.T) {
	r := New([4]string{"a", "b", "c", "d"}, 25000, "1z")

	seat, err := r.SeatByUser("c")
	if err != nil {
		t.Fatalf("SeatByUser: %v", err)
	}
	if seat.Index != 2 {
		t.Errorf("got index %d, want 2", seat.Index)
	}

	if _, err := r.SeatByUser("nobody"); err != ErrSeatNotFound {
		t.Errorf("got err %v, want ErrSeatNotFound", err)
	}
}

func TestSeatOutOfRange(t *testing.T) {
	r := New([4]string{"a", "b", "c", "d"}, 25000, "1z")

	if _, err := r.Seat(4); err != ErrSeatNotFound {
		t.Errorf("got err %v, want ErrSeatNotFound", err)
	}
	if _, err := r.Seat(-1); err != ErrSeatNotFound {
		t.Errorf("got err %v, want ErrSeatNotFound", err)
	}
}

func TestSeatWindFollowsDealerOffset(t *testing.T) {
	cases := []struct {
		seat, dealer int
		want         string
	}{
		{0, 0, "1z"},
		{1, 0, "2z"},
		{2, 0, "3z"},
		{3, 0, "4z"},
		{0, 2, "3z"},
		{2, 2, "1z"},
	}
	for _, c := range cases {
		if got := seatWind(c.seat, c.dealer); got != c.want {
			t.Errorf("seatWind(%d, %d) = %q, want %q", c.seat, c.dealer, got, c.want)
		}
	}
}

func TestSettleScoresSeatHandAgainstRoundState(t *testing.T) {
	r := New([4]string{"a", "b", "c", "d"}, 25000, "3z")
	r.DealerIndex = 1 // seat 1 is dealer -> seat 2 sits South

	seat, err := r.Seat(2)
	if err != nil {
		t.Fatalf("Seat: %v", err)
	}
	seat.Hand = []string{"1m", "2m", "3m", "3m", "4m", "5p", "6p", "7p", "2s", "2s", "3s", "4s", "5s"}

	detail, err := r.Settle(2, "2m", mahjong.Settings{Riichi: 1}, mahjong.Registry())
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if detail.PlayerWindIndex != mahjong.South {
		t.Errorf("got player wind index %d, want South (%d)", detail.PlayerWindIndex, mahjong.South)
	}
	if detail.RoundWindIndex != mahjong.West {
		t.Errorf("got round wind index %d, want West (%d)", detail.RoundWindIndex, mahjong.West)
	}
	if detail.Han < 1 {
		t.Errorf("expected a scored hand, got han %d", detail.Han)
	}
}

func TestSettleUnknownSeat(t *testing.T) {
	r := New([4]string{"a", "b", "c", "d"}, 25000, "1z")
	if _, err := r.Settle(9, "2m", mahjong.Settings{}, mahjong.Registry()); err != ErrSeatNotFound {
		t.Errorf("got err %v, want ErrSeatNotFound", err)
	}
}

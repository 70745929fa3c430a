package points

import "testing"

func TestRoundUpTo100(t *testing.T) {
	cases := map[int]int{0: 0, 100: 100, 101: 200, 199: 200, 250: 300}
	for in, want := range cases {
		if got := roundUpTo100(in); got != want {
			t.Errorf("roundUpTo100(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRoundUpTo10(t *testing.T) {
	cases := map[int]int{20: 20, 21: 30, 29: 30, 32: 40}
	for in, want := range cases {
		if got := roundUpTo10(in); got != want {
			t.Errorf("roundUpTo10(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFixedBaseMangan(t *testing.T) {
	if got := fixedBase(5); got != 2000 {
		t.Errorf("fixedBase(5) = %d, want 2000", got)
	}
	if got := fixedBase(13); got != 8000 {
		t.Errorf("fixedBase(13) = %d, want 8000 (kazoe yakuman)", got)
	}
}

func TestSettleRonDealerMangan(t *testing.T) {
	// Han 5 (mangan): ron, dealer, one honba.
	o := settleFromBase(5, 0, 0, fixedBase(5), true, true, 1)
	if o.Points != 12000+300 {
		t.Errorf("expected 12300 points, got %d", o.Points)
	}
}

func TestSettleTsumoDealerMangan(t *testing.T) {
	o := settleFromBase(5, 0, 0, fixedBase(5), true, false, 0)
	if o.NonDealerPay != 4000 {
		t.Errorf("expected each non-dealer to pay 4000, got %d", o.NonDealerPay)
	}
	if o.Points != 12000 {
		t.Errorf("expected total 12000, got %d", o.Points)
	}
}

func TestSettleTsumoNonDealerMangan(t *testing.T) {
	o := settleFromBase(5, 0, 0, fixedBase(5), false, false, 0)
	if o.DealerPay != 4000 {
		t.Errorf("expected dealer to pay 4000, got %d", o.DealerPay)
	}
	if o.NonDealerPay != 2000 {
		t.Errorf("expected each non-dealer to pay 2000, got %d", o.NonDealerPay)
	}
	if o.Points != 4000+2000*2 {
		t.Errorf("expected total 8000, got %d", o.Points)
	}
}

func TestSettleYakuman(t *testing.T) {
	o := settleFromBase(0, 1, 0, 8000, false, true, 0)
	if o.Points != 32000 {
		t.Errorf("expected single yakuman ron from a non-dealer to pay 32000, got %d", o.Points)
	}
}

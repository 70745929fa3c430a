// Package points turns a mahjong.Detail into the fu and the point transfer
// a settled round pays out, completing the fu/wait-fu logic the engine this
// service grew out of only ever stubbed with TODOs.
package points

import (
	"scoreserver/internal/mahjong"
)

// Outcome is what one settled win pays. On ron, Points is what the
// discarder pays (base x6 for a dealer win, x4 otherwise). On tsumo, Points is the total collected across the table and
// DealerPay/NonDealerPay are what each seat pays individually: when the
// winner is the dealer every other seat pays NonDealerPay; otherwise the
// dealer pays DealerPay and the remaining two non-dealers pay NonDealerPay.
type Outcome struct {
	Han          int
	Fu           int
	Yakuman      int
	Points       int
	DealerPay    int
	NonDealerPay int
}

// Settle computes fu and points from a scored detail. isDealer and ron
// describe the win condition; honba is the repeat-round counter, paid on
// top of the base points (300 total on ron, 100 per payer on tsumo).
func Settle(detail mahjong.Detail, isDealer, ron bool, honba int) Outcome {
	han := detail.Han

	if detail.Yakuman > 0 {
		return settleFromBase(han, detail.Yakuman, 0, 8000*detail.Yakuman, isDealer, ron, honba)
	}
	if han >= 5 {
		return settleFromBase(han, 0, 0, fixedBase(han), isDealer, ron, honba)
	}

	fu := Fu(detail, ron)
	base := roundUpTo100(fu * (1 << (2 + han)))
	return settleFromBase(han, 0, fu, base, isDealer, ron, honba)
}

// settleFromBase applies the standard x4/x6 (ron) or x1/x2 (tsumo) base
// point multipliers, then layers the honba bonus on top.
func settleFromBase(han, yakuman, fu, base int, isDealer, ron bool, honba int) Outcome {
	o := Outcome{Han: han, Yakuman: yakuman, Fu: fu}

	if ron {
		if isDealer {
			o.Points = base*6 + 300*honba
		} else {
			o.Points = base*4 + 300*honba
		}
		return o
	}

	if isDealer {
		o.NonDealerPay = base*2 + 100*honba
		o.Points = o.NonDealerPay * 3
		return o
	}

	o.DealerPay = base*2 + 100*honba
	o.NonDealerPay = base + 100*honba
	o.Points = o.DealerPay + o.NonDealerPay*2
	return o
}

// fixedBase is the mangan-and-up base point table (non-dealer-ron scale);
// settleFromBase's x4/x6/x1/x2 multipliers derive every other figure from
// it the same way they do for the under-5-han basePoints path.
func fixedBase(han int) int {
	switch {
	case han == 5:
		return 2000
	case han >= 6 && han <= 7:
		return 3000
	case han >= 8 && han <= 10:
		return 4000
	case han >= 11 && han <= 12:
		return 6000
	default:
		return 8000 // 13+ han without a registered yakuman counts as kazoe yakuman
	}
}

func roundUpTo100(x int) int {
	if x%100 == 0 {
		return x
	}
	return (x/100 + 1) * 100
}

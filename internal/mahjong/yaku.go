package mahjong

// Settings is the scoring context supplied by the caller: dora indicators,
// seat/round wind, riichi state and the situational win-condition flags.
type Settings struct {
	Dora          []string
	UraDora       []string
	PlayerWind    string
	RoundWind     string
	RoundNumber   int
	Riichi        int // 0 = none, 1 = riichi, 2 = double riichi
	Ippatsu       bool
	AfterAKan     bool
	RobbingAKan   bool
	UnderTheSea   bool
	UnderTheRiver bool
	Ron           bool
}

// encodedSettings carries the numeric form of Settings plus the flags
// predicates need, computed once per Score call.
type encodedSettings struct {
	Settings
	PlayerWindIndex int
	RoundWindIndex  int
}

// ClosedRule gates whether a yaku may apply based on hand concealment.
type ClosedRule int

const (
	ClosedOnly    ClosedRule = 0
	Always        ClosedRule = 1
	ReducedIfOpen ClosedRule = -1
)

// evalContext is what a predicate sees: the partition under evaluation,
// the winning tile index, and the encoded settings.
type evalContext struct {
	Partition Partition
	WinTile   int
	Settings  *encodedSettings
}

// Predicate reports whether a yaku applies to this partition/win.
type Predicate func(ctx *evalContext) bool

// Entry is one row of the yaku registry.
type Entry struct {
	Name       string
	Han        int
	Yakuman    int
	ClosedRule ClosedRule
	Predicate  Predicate
}

func isYakuhaiTile(tile int) bool {
	return tile == White || tile == Green || tile == Red
}

func isTerminalOrHonor(tile int) bool {
	if tile >= 27 {
		return true
	}
	rank := tile % 9
	return rank == 0 || rank == 8
}

func meldsOf(ctx *evalContext, kinds ...Kind) []Set {
	var out []Set
	for _, s := range ctx.Partition {
		for _, k := range kinds {
			if s.Kind == k {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// predicatePinfu mirrors the source's over-acceptance bug verbatim: the
// two-sided-wait check (hu_num == meld[0] or meld[2]) runs against every
// Sequence in the partition, not only the one containing the win tile.
func predicatePinfu(ctx *evalContext) bool {
	if len(ctx.Partition) != 5 {
		return false
	}

	hasPair := false
	for _, s := range ctx.Partition {
		switch s.Kind {
		case KindPair:
			if hasPair {
				return false
			}
			hasPair = true
			if s.Start == ctx.Settings.PlayerWindIndex || s.Start == ctx.Settings.RoundWindIndex || isYakuhaiTile(s.Start) {
				return false
			}
		case KindSequence:
			// allowed
		default:
			return false
		}
	}

	for _, s := range ctx.Partition {
		if s.Kind == KindSequence {
			tiles := s.Tiles()
			if ctx.WinTile == tiles[0] || ctx.WinTile == tiles[2] {
				return true
			}
		}
	}
	return false
}

func predicateTanyao(ctx *evalContext) bool {
	for _, s := range ctx.Partition {
		for _, t := range s.Tiles() {
			if isTerminalOrHonor(t) {
				return false
			}
		}
	}
	return true
}

func hasYakuhaiAt(ctx *evalContext, index int) bool {
	for _, s := range meldsOf(ctx, KindTriplet, KindQuad) {
		if s.Start == index {
			return true
		}
	}
	return false
}

func predicateYakuhaiPlayerWind(ctx *evalContext) bool {
	return hasYakuhaiAt(ctx, ctx.Settings.PlayerWindIndex)
}

func predicateYakuhaiRoundWind(ctx *evalContext) bool {
	return hasYakuhaiAt(ctx, ctx.Settings.RoundWindIndex)
}

func predicateYakuhaiWhite(ctx *evalContext) bool { return hasYakuhaiAt(ctx, White) }
func predicateYakuhaiGreen(ctx *evalContext) bool { return hasYakuhaiAt(ctx, Green) }
func predicateYakuhaiRed(ctx *evalContext) bool   { return hasYakuhaiAt(ctx, Red) }

func predicateRiichi(ctx *evalContext) bool {
	return ctx.Settings.Riichi == 1
}

func predicateDoubleRiichi(ctx *evalContext) bool {
	return ctx.Settings.Riichi == 2
}

func predicateIppatsu(ctx *evalContext) bool {
	return ctx.Settings.Ippatsu
}

func predicateFullyConcealedSelfDraw(ctx *evalContext) bool {
	return !ctx.Settings.Ron
}

func predicatePureDoubleSequence(ctx *evalContext) bool {
	var seen []Set
	for _, s := range ctx.Partition {
		if s.Kind != KindSequence {
			continue
		}
		for _, other := range seen {
			if other.Start == s.Start {
				return true
			}
		}
		seen = append(seen, s)
	}
	return false
}

func predicateAfterAKan(ctx *evalContext) bool {
	return ctx.Settings.AfterAKan
}

func predicateRobbingAKan(ctx *evalContext) bool {
	return ctx.Settings.RobbingAKan
}

func predicateUnderTheSea(ctx *evalContext) bool {
	return ctx.Settings.UnderTheSea
}

func predicateUnderTheRiver(ctx *evalContext) bool {
	return ctx.Settings.UnderTheRiver
}

// predicateTripleTriplets treats a Quad as a triplet of its repeated tile,
// matching the source's behavior of reading the Quad's non-sentinel index.
func predicateTripleTriplets(ctx *evalContext) bool {
	present := map[int]bool{}
	for _, s := range ctx.Partition {
		if s.Kind == KindTriplet || s.Kind == KindQuad {
			present[s.Start] = true
		}
	}
	for i := 0; i < 9; i++ {
		if present[i] && present[i+9] && present[i+18] {
			return true
		}
	}
	return false
}

func predicateThreeQuads(ctx *evalContext) bool {
	count := 0
	for _, s := range ctx.Partition {
		if s.Kind == KindQuad {
			count++
		}
	}
	return count == 3
}

func predicateAllTriplets(ctx *evalContext) bool {
	if len(ctx.Partition) != 5 {
		return false // seven pairs holds no triplets
	}
	for _, s := range ctx.Partition {
		if s.Kind == KindSequence {
			return false
		}
	}
	return true
}

// Registry is the ordered, default set of yaku evaluated by Score. The
// required predicates (pinfu, tanyao, the five yakuhai) are always
// present; the remaining "optional in the source" predicates are
// registered too, except under-the-sea / under-the-river, which stay out
// per the design note -- see RegisterOptional.
func Registry() []Entry {
	return []Entry{
		{Name: "pinfu", Han: 1, ClosedRule: ClosedOnly, Predicate: predicatePinfu},
		{Name: "tanyao", Han: 1, ClosedRule: Always, Predicate: predicateTanyao},
		{Name: "yakuhai.player_wind", Han: 1, ClosedRule: Always, Predicate: predicateYakuhaiPlayerWind},
		{Name: "yakuhai.round_wind", Han: 1, ClosedRule: Always, Predicate: predicateYakuhaiRoundWind},
		{Name: "yakuhai.white", Han: 1, ClosedRule: Always, Predicate: predicateYakuhaiWhite},
		{Name: "yakuhai.green", Han: 1, ClosedRule: Always, Predicate: predicateYakuhaiGreen},
		{Name: "yakuhai.red", Han: 1, ClosedRule: Always, Predicate: predicateYakuhaiRed},
		{Name: "riichi", Han: 1, ClosedRule: ClosedOnly, Predicate: predicateRiichi},
		{Name: "double_riichi", Han: 2, ClosedRule: ClosedOnly, Predicate: predicateDoubleRiichi},
		{Name: "ippatsu", Han: 1, ClosedRule: ClosedOnly, Predicate: predicateIppatsu},
		{Name: "fully_concealed_self_draw", Han: 1, ClosedRule: ClosedOnly, Predicate: predicateFullyConcealedSelfDraw},
		{Name: "pure_double_sequence", Han: 1, ClosedRule: ClosedOnly, Predicate: predicatePureDoubleSequence},
		{Name: "after_a_kan", Han: 1, ClosedRule: Always, Predicate: predicateAfterAKan},
		{Name: "robbing_a_kan", Han: 1, ClosedRule: Always, Predicate: predicateRobbingAKan},
		{Name: "triple_triplets", Han: 2, ClosedRule: Always, Predicate: predicateTripleTriplets},
		{Name: "three_quads", Han: 2, ClosedRule: Always, Predicate: predicateThreeQuads},
		{Name: "all_triplets", Han: 2, ClosedRule: Always, Predicate: predicateAllTriplets},
	}
}

// RegisterOptional returns the predicates the source defines but never
// enables by default (under-the-sea, under-the-river). A caller that wants
// them appends the result onto Registry() and passes that to
// ScoreWithRegistry or ScoreDetailedWithRegistry.
func RegisterOptional() []Entry {
	return []Entry{
		{Name: "under_the_sea", Han: 1, ClosedRule: Always, Predicate: predicateUnderTheSea},
		{Name: "under_the_river", Han: 1, ClosedRule: Always, Predicate: predicateUnderTheRiver},
	}
}

package mahjong

// YakuHan names one matched yaku and the han it contributed. For
// yakuman-tier entries the contributed han is always reported as 0 (the
// yakuman count itself carries the score).
type YakuHan struct {
	Name string
	Han  int
}

// Result is the outcome of a winning Score call.
type Result struct {
	Han          int
	Yakus        []YakuHan
	Yakuman      int
	YakumanYakus []YakuHan
}

// Split returns every valid structural partition of hand+exposed: the
// seven-pairs partition (if any) followed by every standard partition, in
// the canonical order used for tie-breaking in Score.
func Split(hand []string, exposed [][]string) ([]Partition, error) {
	handIdx, err := EncodeHand(hand)
	if err != nil {
		return nil, err
	}
	exposedRaw := make([][]int, len(exposed))
	for i, raw := range exposed {
		idx, err := EncodeHand(raw)
		if err != nil {
			return nil, err
		}
		exposedRaw[i] = idx
	}
	exposedSets, err := IngestExposedSets(exposedRaw)
	if err != nil {
		return nil, err
	}

	var partitions []Partition
	partitions = append(partitions, SplitSevenPairs(handIdx, exposedSets, false, false)...)
	partitions = append(partitions, SplitStandard(handIdx, exposedSets)...)
	return partitions, nil
}

// IsFullyConcealed reports whether the hand has no publicly declared
// meld: every exposed set must be a Quad formed from a closed kan (the
// only way a Quad appears among "exposed" sets while still counting as
// closed for menzen-gated yaku).
func IsFullyConcealed(exposed []Set) bool {
	for _, s := range exposed {
		if !(s.Kind == KindQuad && s.Concealed) {
			return false
		}
	}
	return true
}

// Score computes the best-scoring partition of a winning hand against the
// default registry and returns its yaku/han/yakuman, or ErrNoYaku if no
// partition of the hand satisfies any registered yaku.
func Score(hand []string, exposed [][]string, winTile string, settings Settings) (Result, error) {
	return ScoreWithRegistry(hand, exposed, winTile, settings, Registry())
}

// ScoreWithRegistry is Score parameterized on the yaku registry, so callers
// can extend or swap predicates (e.g. opting into RegisterOptional) without
// touching the core evaluation loop.
func ScoreWithRegistry(hand []string, exposed [][]string, winTile string, settings Settings, registry []Entry) (Result, error) {
	result, _, err := scoreWithRegistryDetailed(hand, exposed, winTile, settings, registry)
	return result, err
}

// Detail carries the winning partition alongside its Result, for callers
// (fu/point settlement) that need to inspect the hand's structural shape
// rather than just its yaku list.
type Detail struct {
	Result
	Partition       Partition
	WinTile         int
	Concealed       bool
	PlayerWindIndex int
	RoundWindIndex  int
}

// ScoreDetailed is Score but also returns the partition the
// scorer selected, so a caller can compute fu from the same structural
// decomposition the han count came from.
func ScoreDetailed(hand []string, exposed [][]string, winTile string, settings Settings) (Detail, error) {
	return ScoreDetailedWithRegistry(hand, exposed, winTile, settings, Registry())
}

// ScoreDetailedWithRegistry is ScoreDetailed parameterized on the yaku
// registry, for callers that enable RegisterOptional's under-the-sea/
// under-the-river predicates.
func ScoreDetailedWithRegistry(hand []string, exposed [][]string, winTile string, settings Settings, registry []Entry) (Detail, error) {
	result, detail, err := scoreWithRegistryDetailed(hand, exposed, winTile, settings, registry)
	if err != nil {
		return Detail{}, err
	}
	detail.Result = result
	return detail, nil
}

func scoreWithRegistryDetailed(hand []string, exposed [][]string, winTile string, settings Settings, registry []Entry) (Result, Detail, error) {
	winIdx, err := Encode(winTile)
	if err != nil {
		return Result{}, Detail{}, err
	}

	handIdx, err := EncodeHand(hand)
	if err != nil {
		return Result{}, Detail{}, err
	}
	exposedRaw := make([][]int, len(exposed))
	for i, raw := range exposed {
		idx, err := EncodeHand(raw)
		if err != nil {
			return Result{}, Detail{}, err
		}
		exposedRaw[i] = idx
	}
	exposedSets, err := IngestExposedSets(exposedRaw)
	if err != nil {
		return Result{}, Detail{}, err
	}

	// Tsumo/ron are absorbed uniformly: if the closed hand is missing its
	// winning tile, append it (both the numeric and printable forms).
	printableAll := append(append([]string{}, hand...), flatten(exposed)...)
	if len(handIdx)%3 == 1 {
		handIdx = append(handIdx, winIdx)
		printableAll = append(printableAll, winTile)
	}

	playerWindIdx, err := Encode(settings.PlayerWind)
	if err != nil {
		return Result{}, Detail{}, err
	}
	roundWindIdx, err := Encode(settings.RoundWind)
	if err != nil {
		return Result{}, Detail{}, err
	}

	enc := &encodedSettings{
		Settings:        settings,
		PlayerWindIndex: playerWindIdx,
		RoundWindIndex:  roundWindIdx,
	}

	concealed := IsFullyConcealed(exposedSets)

	var partitions []Partition
	partitions = append(partitions, SplitSevenPairs(handIdx, exposedSets, false, false)...)
	partitions = append(partitions, SplitStandard(handIdx, exposedSets)...)

	var bestHan, bestYakuman int
	var bestYakus, bestYakumanYakus []YakuHan
	var bestPartition Partition
	haveBest := false

	for _, partition := range partitions {
		han, yakuman := 0, 0
		var yakus, yakumanYakus []YakuHan

		ctx := &evalContext{Partition: partition, WinTile: winIdx, Settings: enc}

		for _, entry := range registry {
			if entry.ClosedRule == ClosedOnly && !concealed {
				continue
			}
			if !entry.Predicate(ctx) {
				continue
			}
			effectiveHan := entry.Han
			if entry.ClosedRule == ReducedIfOpen && !concealed {
				effectiveHan--
			}
			if entry.Yakuman > 0 {
				yakuman += entry.Yakuman
				yakumanYakus = append(yakumanYakus, YakuHan{Name: entry.Name})
			} else {
				han += effectiveHan
				yakus = append(yakus, YakuHan{Name: entry.Name, Han: effectiveHan})
			}
		}

		if !haveBest || yakuman > bestYakuman || (yakuman == bestYakuman && han > bestHan) {
			haveBest = true
			bestHan, bestYakuman = han, yakuman
			bestYakus, bestYakumanYakus = yakus, yakumanYakus
			bestPartition = partition
		}
	}

	if !haveBest {
		return Result{}, Detail{}, ErrNoYaku
	}

	if bestHan > 0 || bestYakuman > 0 {
		doraCount := countMatches(printableAll, settings.Dora)
		uraDoraCount := countMatches(printableAll, settings.UraDora)
		redDoraCount := countRedFives(printableAll)

		if doraCount > 0 {
			bestHan += doraCount
			bestYakus = append(bestYakus, YakuHan{Name: "yaku.dora", Han: doraCount})
		}
		if redDoraCount > 0 {
			bestHan += redDoraCount
			bestYakus = append(bestYakus, YakuHan{Name: "yaku.red_dora", Han: redDoraCount})
		}
		if settings.Riichi > 0 && uraDoraCount > 0 {
			bestHan += uraDoraCount
			bestYakus = append(bestYakus, YakuHan{Name: "yaku.ura_dora", Han: uraDoraCount})
		}
	}

	if bestHan <= 0 && bestYakuman <= 0 {
		return Result{}, Detail{}, ErrNoYaku
	}

	result := Result{
		Han:          bestHan,
		Yakus:        bestYakus,
		Yakuman:      bestYakuman,
		YakumanYakus: bestYakumanYakus,
	}
	detail := Detail{
		Partition:       bestPartition,
		WinTile:         winIdx,
		Concealed:       concealed,
		PlayerWindIndex: playerWindIdx,
		RoundWindIndex:  roundWindIdx,
	}
	return result, detail, nil
}

func flatten(exposed [][]string) []string {
	var out []string
	for _, meld := range exposed {
		out = append(out, meld...)
	}
	return out
}

func countMatches(tiles []string, set []string) int {
	if len(set) == 0 {
		return 0
	}
	lookup := make(map[string]struct{}, len(set))
	for _, s := range set {
		lookup[s] = struct{}{}
	}
	n := 0
	for _, t := range tiles {
		if _, ok := lookup[t]; ok {
			n++
		}
	}
	return n
}

func countRedFives(tiles []string) int {
	n := 0
	for _, t := range tiles {
		if t == RedFiveMan || t == RedFivePin || t == RedFiveSou {
			n++
		}
	}
	return n
}

package api

import (
	"encoding/json"
	"fmt"

	"scoreserver/internal/httpserver"
	"scoreserver/internal/mahjong"
	"scoreserver/internal/points"
)

// ScoreRequest is a stateless scoring call: a hand, its winning tile, and
// the situational settings the caller already knows (seat/round wind,
// dora, riichi state). IsDealer/Ron/Honba feed point settlement on top
// of the raw han/yaku result.
type ScoreRequest struct {
	Hand     []string         `json:"hand"`
	Exposed  [][]string       `json:"exposed"`
	WinTile  string           `json:"winTile"`
	Settings mahjong.Settings `json:"settings"`
	IsDealer bool             `json:"isDealer"`
	Ron      bool             `json:"ron"`
	Honba    int              `json:"honba"`
}

type ScoreResponse struct {
	Han          int               `json:"han"`
	Fu           int               `json:"fu"`
	Yakuman      int               `json:"yakuman"`
	Yakus        []mahjong.YakuHan `json:"yakus"`
	YakumanYakus []mahjong.YakuHan `json:"yakumanYakus"`
	Points       int               `json:"points"`
	DealerPay    int               `json:"dealerPay,omitempty"`
	NonDealerPay int               `json:"nonDealerPay,omitempty"`
}

func (a *API) Score(c *httpserver.Context) error {
	var req ScoreRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}

	cacheKey := scoreCacheKey(req)
	if a.Cache != nil {
		if cached, ok := a.Cache.Get(cacheKey); ok {
			c.Success(cached)
			return nil
		}
	}

	detail, err := mahjong.ScoreDetailedWithRegistry(req.Hand, req.Exposed, req.WinTile, req.Settings, a.Registry)
	if err != nil {
		c.BadRequest(err.Error())
		return nil
	}

	outcome := points.Settle(detail, req.IsDealer, req.Ron, req.Honba)

	resp := ScoreResponse{
		Han:          detail.Han,
		Fu:           outcome.Fu,
		Yakuman:      detail.Yakuman,
		Yakus:        detail.Yakus,
		YakumanYakus: detail.YakumanYakus,
		Points:       outcome.Points,
		DealerPay:    outcome.DealerPay,
		NonDealerPay: outcome.NonDealerPay,
	}

	if a.Cache != nil {
		a.Cache.Set(cacheKey, resp)
	}

	c.Success(resp)
	return nil
}

// scoreCacheKey identifies a Score call by its full request body: the
// same hand, exposed melds, win tile and settings always settle to the
// same outcome, so repeat lookups (a player's client re-requesting the
// same win from several devices) hit the cache instead of re-scoring.
func scoreCacheKey(req ScoreRequest) string {
	body, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("score:%s", body)
}

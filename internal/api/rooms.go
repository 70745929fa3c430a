package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scoreserver/internal/httpserver"
	"scoreserver/internal/mahjong"
	"scoreserver/internal/points"
	"scoreserver/internal/room"
	"scoreserver/internal/storage"
	"scoreserver/internal/telemetry/log"
)

type CreateRoomRequest struct {
	UserIDs       [4]string `json:"userIDs"`
	InitialPoints int       `json:"initialPoints"`
	RoundWind     string    `json:"roundWind"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	RoundWind string   `json:"roundWind"`
	Seats     []string `json:"seats"`
	Points    []int    `json:"points"`
}

func (a *API) CreateRoom(c *httpserver.Context) error {
	var req CreateRoomRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	if req.InitialPoints == 0 {
		req.InitialPoints = 25000
	}
	if req.RoundWind == "" {
		req.RoundWind = "1z"
	}

	r := a.Rooms.Create(req.UserIDs, req.InitialPoints, req.RoundWind)
	c.Success(toRoomResponse(r))
	return nil
}

func (a *API) GetRoom(c *httpserver.Context) error {
	r, ok := a.Rooms.Get(c.Param("id"))
	if !ok {
		c.NotFound("room not found")
		return nil
	}
	c.Success(toRoomResponse(r))
	return nil
}

func toRoomResponse(r *room.Room) RoomResponse {
	resp := RoomResponse{ID: r.ID, RoundWind: r.RoundWind}
	for _, seat := range r.Seats {
		if seat == nil {
			resp.Seats = append(resp.Seats, "")
			resp.Points = append(resp.Points, 0)
			continue
		}
		resp.Seats = append(resp.Seats, seat.UserID)
		resp.Points = append(resp.Points, seat.Points)
	}
	return resp
}

// applyPoints moves points between seats per outcome: on ron, only the
// winner is credited -- the discarder is not known here, so no seat is
// debited; on tsumo, the dealer and each non-dealer pay their own share
// while everyone who isn't the winner loses it.
func applyPoints(r *room.Room, winnerSeat int, winnerIsDealer, ron bool, outcome points.Outcome) {
	winner, err := r.Seat(winnerSeat)
	if err != nil {
		return
	}
	winner.AddPoints(outcome.Points)

	if ron {
		return // the discarder's seat isn't known at this layer; callers with that information adjust it directly
	}

	for i := 0; i < 4; i++ {
		if i == winnerSeat {
			continue
		}
		seat, err := r.Seat(i)
		if err != nil || seat == nil {
			continue
		}
		if i == r.DealerIndex && !winnerIsDealer {
			seat.AddPoints(-outcome.DealerPay)
		} else {
			seat.AddPoints(-outcome.NonDealerPay)
		}
	}
}

type SetHandRequest struct {
	Seat    int        `json:"seat"`
	Hand    []string   `json:"hand"`
	Exposed [][]string `json:"exposed"`
}

func (a *API) SetHand(c *httpserver.Context) error {
	r, ok := a.Rooms.Get(c.Param("id"))
	if !ok {
		c.NotFound("room not found")
		return nil
	}

	var req SetHandRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}

	seat, err := r.Seat(req.Seat)
	if err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	seat.Hand = req.Hand
	seat.Melds = req.Exposed

	c.Success(nil)
	return nil
}

// GetRounds returns a room's most recently settled rounds, newest first,
// for a reconnecting client to resync against. Results are fronted by
// Cache the same way Score memoizes its lookups, keyed by room+limit,
// since a reconnect storm (everyone's client replaying the same room at
// once) should hit Mongo once, not once per seat.
func (a *API) GetRounds(c *httpserver.Context) error {
	if a.Rounds == nil {
		c.Success([]*storage.RoundRecord{})
		return nil
	}

	roomID := c.Param("id")
	limit := int64(20)
	if q := c.Query("limit"); q != "" {
		if n := atoiOrZero(q); n > 0 {
			limit = int64(n)
		}
	}

	cacheKey := fmt.Sprintf("rounds:%s:%d", roomID, limit)
	if a.Cache != nil {
		if cached, ok := a.Cache.Get(cacheKey); ok {
			c.Success(cached)
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	records, err := a.Rounds.FindByRoom(ctx, roomID, limit)
	if err != nil {
		c.ServerError(err.Error())
		return nil
	}

	if a.Cache != nil {
		a.Cache.Set(cacheKey, records)
	}

	c.Success(records)
	return nil
}

func (a *API) GetPartitions(c *httpserver.Context) error {
	r, ok := a.Rooms.Get(c.Param("id"))
	if !ok {
		c.NotFound("room not found")
		return nil
	}

	seatIndex := 0
	if q := c.Query("seat"); q != "" {
		seatIndex = atoiOrZero(q)
	}
	seat, err := r.Seat(seatIndex)
	if err != nil {
		c.BadRequest(err.Error())
		return nil
	}

	partitions, err := mahjong.Split(seat.Hand, seat.Melds)
	if err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	c.Success(partitions)
	return nil
}

type WinRequest struct {
	Seat       int              `json:"seat"`
	WinTile    string           `json:"winTile"`
	Ron        bool             `json:"ron"`
	Honba      int              `json:"honba"`
	RiichiDora []string         `json:"uraDora"`
	Settings   mahjong.Settings `json:"settings"`
}

type WinResponse struct {
	Han          int               `json:"han"`
	Fu           int               `json:"fu"`
	Yakuman      int               `json:"yakuman"`
	Yakus        []mahjong.YakuHan `json:"yakus"`
	Points       int               `json:"points"`
	DealerPay    int               `json:"dealerPay,omitempty"`
	NonDealerPay int               `json:"nonDealerPay,omitempty"`
}

// Win settles a claimed win at seat, persists the round if a repository
// is configured, and applies the point transfer through applyPoints (on
// ron that credits the winner only).
func (a *API) Win(c *httpserver.Context) error {
	r, ok := a.Rooms.Get(c.Param("id"))
	if !ok {
		c.NotFound("room not found")
		return nil
	}

	var req WinRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	req.Settings.UraDora = req.RiichiDora
	req.Settings.Ron = req.Ron

	detail, err := r.Settle(req.Seat, req.WinTile, req.Settings, a.Registry)
	if err != nil {
		c.BadRequest(err.Error())
		return nil
	}

	isDealer := req.Seat == r.DealerIndex
	outcome := points.Settle(detail, isDealer, req.Ron, req.Honba)

	applyPoints(r, req.Seat, isDealer, req.Ron, outcome)

	if a.Rounds != nil {
		names := make([]string, 0, len(detail.Yakus))
		for _, y := range detail.Yakus {
			names = append(names, y.Name)
		}
		record := &storage.RoundRecord{
			RoomID:     r.ID,
			WinnerSeat: req.Seat,
			Han:        detail.Han,
			Fu:         outcome.Fu,
			Yakuman:    detail.Yakuman,
			Points:     outcome.Points,
			Yaku:       names,
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.Rounds.Save(ctx, record)
	}

	if a.Bus != nil && a.ResultTopic != "" {
		event, err := json.Marshal(struct {
			RoomID string `json:"roomId"`
			Seat   int    `json:"seat"`
			Han    int    `json:"han"`
			Fu     int    `json:"fu"`
			Points int    `json:"points"`
		}{RoomID: r.ID, Seat: req.Seat, Han: detail.Han, Fu: outcome.Fu, Points: outcome.Points})
		if err != nil {
			log.Error("marshal settled-round event for room %s: %v", r.ID, err)
		} else if err := a.Bus.Publish(a.ResultTopic, event); err != nil {
			log.Warn("publish settled-round event for room %s: %v", r.ID, err)
		}
	}

	c.Success(WinResponse{
		Han:          detail.Han,
		Fu:           outcome.Fu,
		Yakuman:      detail.Yakuman,
		Yakus:        detail.Yakus,
		Points:       outcome.Points,
		DealerPay:    outcome.DealerPay,
		NonDealerPay: outcome.NonDealerPay,
	})
	return nil
}

func atoiOrZero(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

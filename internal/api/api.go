// Package api registers this service's HTTP routes: stateless hand
// scoring, and the room endpoints that drive a live table through the
// win-claim settlement path.
package api

import (
	"scoreserver/internal/auth"
	"scoreserver/internal/cache"
	"scoreserver/internal/httpserver"
	"scoreserver/internal/mahjong"
	"scoreserver/internal/room"
	"scoreserver/internal/storage"
	"scoreserver/internal/transport"
)

// API bundles the dependencies route handlers need. Rounds, Cache, Hub and
// Bus are all optional -- a deployment running purely as a stateless
// scoring service can leave them nil to skip persistence, memoization,
// live seat connections, and cluster-wide settlement events respectively.
// Registry is this deployment's ruleset (RulesConf.Registry()) and is
// never nil -- callers pass at least mahjong.Registry(). ResultTopic is
// the subject Win publishes settled rounds to when Bus is set.
type API struct {
	Rooms       *room.Manager
	Rounds      *storage.RoundRepository
	Cache       *cache.Cache
	Registry    []mahjong.Entry
	Hub         *transport.Hub
	Bus         *transport.EventBus
	ResultTopic string
}

func New(rooms *room.Manager, rounds *storage.RoundRepository, resultCache *cache.Cache, registry []mahjong.Entry) *API {
	return &API{Rooms: rooms, Rounds: rounds, Cache: resultCache, Registry: registry}
}

// RegisterRoutes wires every handler onto server under /v1. Stateless
// scoring stays open since it touches no player's stored state; every
// room endpoint requires a valid bearer token because it reads or
// mutates a seat's hand and points.
func RegisterRoutes(server *httpserver.Server, a *API, issuer *auth.Issuer) {
	v1 := server.Group("/v1")
	v1.POST("/score", a.Score)

	rooms := server.Group("/v1/rooms", RequireAuth(issuer))
	rooms.POST("", a.CreateRoom)
	rooms.GET("/:id", a.GetRoom)
	rooms.GET("/:id/partitions", a.GetPartitions)
	rooms.POST("/:id/hand", a.SetHand)
	rooms.POST("/:id/win", a.Win)
	rooms.GET("/:id/rounds", a.GetRounds)
	rooms.GET("/:id/ws", a.Ws)
}

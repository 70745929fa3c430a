package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"scoreserver/internal/httpserver"
	"scoreserver/internal/telemetry/log"
	"scoreserver/internal/transport"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Seat clients connect from whatever origin the app shell is served
	// from; this service only trusts the bearer token, not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Ws upgrades the request to a websocket and registers it on the hub under
// the seat's user ID, so later broadcasts (settled rounds, discards from
// other seats) can find it. RequireAuth has already verified the token and
// stashed the user ID on the gin context before this handler runs.
func (a *API) Ws(c *httpserver.Context) error {
	if a.Hub == nil {
		c.ServerError("websocket transport not configured")
		return nil
	}

	roomID := c.Param("id")
	if _, ok := a.Rooms.Get(roomID); !ok {
		c.NotFound("room not found")
		return nil
	}

	userID, _ := c.Gin().Get(userIDContextKey)
	userIDStr, _ := userID.(string)

	conn, err := upgrader.Upgrade(c.Gin().Writer, c.Gin().Request, nil)
	if err != nil {
		log.Error("ws upgrade for room %s: %v", roomID, err)
		return nil
	}

	wrapped := transport.NewConnection(conn, userIDStr, a.Hub.InboundChan)
	a.Hub.Register(wrapped)
	return nil
}

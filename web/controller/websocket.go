package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	gorillaws "github.com/gorilla/websocket"

	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/service"
	"github.com/velmara/heritage-panel/web/websocket"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// joinFrame is the only client-to-server frame the relay understands.
type joinFrame struct {
	Event string `json:"event"`
	Token string `json:"token"`
}

// WebSocketController upgrades dashboard connections and gates entry to
// the admin room.
type WebSocketController struct {
	hub          *websocket.Hub
	tokenService *service.TokenService
}

func NewWebSocketController(g *gin.RouterGroup, hub *websocket.Hub, tokenService *service.TokenService) *WebSocketController {
	w := &WebSocketController{hub: hub, tokenService: tokenService}
	w.initRouter(g)
	return w
}

func (w *WebSocketController) initRouter(g *gin.RouterGroup) {
	g.GET("/ws", w.handleWebSocket)
}

// handleWebSocket owns one connection's lifetime. The connection is
// admitted to the admin room only after a join-admin frame carrying a
// valid credential; a bad credential is ignored and the connection
// simply never receives broadcasts.
func (w *WebSocketController) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := websocket.NewClient(w.hub, conn)
	go client.WritePump()

	joined := false
	defer func() {
		if joined {
			w.hub.Unregister(client)
		} else {
			close(client.Send)
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if joined {
			continue
		}

		var frame joinFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Event != "join-admin" {
			continue
		}
		if _, err := w.tokenService.Parse(frame.Token); err != nil {
			logger.Debugf("websocket join rejected for %s", client.ID)
			continue
		}
		w.hub.Register(client)
		joined = true
	}
}

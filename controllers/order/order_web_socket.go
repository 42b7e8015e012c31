package ordercontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Jrgn63/keyking/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes newly paid orders to connected admin dashboards.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// Handle upgrades the connection and keeps it registered until the client
// goes away. Sits behind the admin guard.
func (f *Feed) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

// Broadcast sends the order to every connected client; dead connections are
// dropped on the next read.
func (f *Feed) Broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		log.Error().Err(err).Str("order_ref", order.Ref).Msg("marshalling order for feed failed")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}

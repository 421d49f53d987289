package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// StockChange is pushed to connected clients whenever a sale mutates
// inventory.
type StockChange struct {
	Action    string    `json:"action"` // sale_created | sale_reversed
	ProductID uuid.UUID `json:"produto_id"`
	Name      string    `json:"nome"`
	Stock     int       `json:"estoque"`
	LowStock  bool      `json:"estoque_baixo"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// PublishStockChange serializes the change and hands it to the broadcast
// loop. Blocks until Run picks it up.
func (h *Hub) PublishStockChange(change StockChange) {
	msg, err := json.Marshal(struct {
		Type string `json:"type"`
		StockChange
	}{Type: "stock_update", StockChange: change})
	if err != nil {
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

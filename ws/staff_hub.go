package ws

import (
	"log"
	"net/http"
	"sync"

	"backend/pkg/metrics"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event names pushed to staff clients.
const (
	EventOrderList   = "order_list"
	EventTableStatus = "table_status"
)

// Frame is the envelope every push uses.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// StaffHub fans order and table updates out to connected staff.
// Rooms are keyed by owner id, so staff of one restaurant never see
// another restaurant's orders.
type StaffHub struct {
	clients    map[uint]map[*websocket.Conn]bool // ownerID -> set of clients
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn    *websocket.Conn
	OwnerID uint
}

type broadcastMessage struct {
	OwnerID uint
	Frame   Frame
}

func NewStaffHub() *StaffHub {
	return &StaffHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns all client-set mutation; call it once in its own goroutine.
func (h *StaffHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OwnerID] == nil {
				h.clients[sub.OwnerID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OwnerID][sub.Conn] = true
			h.mu.Unlock()
			metrics.ConnectedStaff.Inc()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OwnerID][sub.Conn]; ok {
				delete(h.clients[sub.OwnerID], sub.Conn)
				sub.Conn.Close()
				metrics.ConnectedStaff.Dec()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OwnerID] {
				if err := conn.WriteJSON(msg.Frame); err != nil {
					// Best effort: drop the dead client, keep going.
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.OwnerID], conn)
					metrics.ConnectedStaff.Dec()
				}
			}
			h.mu.Unlock()
			metrics.BroadcastsSent.Inc()
		}
	}
}

// ClientCount reports how many staff clients one restaurant has online.
func (h *StaffHub) ClientCount(ownerID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[ownerID])
}

// BroadcastOrders pushes the refreshed aggregate order list to every
// staff client of one restaurant. Delivery is fire-and-forget; the
// mutation that triggered it never learns whether anyone was listening.
func (h *StaffHub) BroadcastOrders(ownerID uint, orders any) {
	h.broadcast <- broadcastMessage{OwnerID: ownerID, Frame: Frame{Event: EventOrderList, Data: orders}}
}

func (h *StaffHub) BroadcastTableStatus(ownerID uint, tables any) {
	h.broadcast <- broadcastMessage{OwnerID: ownerID, Frame: Frame{Event: EventTableStatus, Data: tables}}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades an authenticated staff connection and parks
// it in the room of its own restaurant. The owner id comes from the
// verified token, never from the client.
func (h *StaffHub) HandleWebSocket(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	if ownerID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no restaurant scope"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OwnerID: ownerID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains incoming frames (staff clients are receive-only)
// and unregisters on the first read error.
func (h *StaffHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

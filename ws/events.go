package ws

import (
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event tells subscribed clients that rows in a table changed; they react by
// re-fetching their lists.
type Event struct {
	Table string `json:"table"`
	OrgID uint   `json:"orgId"`
}

type subscription struct {
	conn   *websocket.Conn
	tables []string
}

// EventHub fans table-change events out to websocket subscribers.
type EventHub struct {
	clients    map[string]map[*websocket.Conn]bool // table -> set of clients
	broadcast  chan Event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *EventHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, t := range sub.tables {
				if h.clients[t] == nil {
					h.clients[t] = make(map[*websocket.Conn]bool)
				}
				h.clients[t][sub.conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			for _, t := range sub.tables {
				if _, ok := h.clients[t][sub.conn]; ok {
					delete(h.clients[t], sub.conn)
				}
			}
			h.mu.Unlock()
			sub.conn.Close()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.Table] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.Table], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish is called by controllers after a successful write. Safe to call
// on a nil hub (tests wire controllers without one).
func (h *EventHub) Publish(table string, orgID uint) {
	if h == nil {
		return
	}
	h.broadcast <- Event{Table: table, OrgID: orgID}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades the connection and subscribes it to the tables named in
// ?tables=orders,menu_items. The read loop only watches for close.
func (h *EventHub) Handle(c *gin.Context) {
	tablesParam := c.Query("tables")
	if tablesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "tables query param is required"})
		return
	}
	tables := strings.Split(tablesParam, ",")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	sub := subscription{conn: conn, tables: tables}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

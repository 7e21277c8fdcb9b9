package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event names pushed to connected dashboards. The client consumes these as
// cache-refresh hints and re-fetches over HTTP when in doubt.
const (
	EventOrderSummaryUpdate = "orderSummaryUpdate"
	EventTableAdded         = "tableAdded"
	EventTableUpdated       = "tableUpdated"
	EventTableDeleted       = "tableDeleted"
	EventTableStatusUpdated = "tableStatusUpdated"
	EventTableStatsUpdated  = "tableStatsUpdated"
)

// Publisher is the notification port handed to controllers, so the broadcast
// side effect can be swapped out in tests.
type Publisher interface {
	Publish(event string, payload any)
}

// Message is the wire envelope for every pushed event.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API already sits behind CORS; the browser client connects from a
	// different origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the set of connected clients and fans broadcasts out to them.
// Delivery is fire-and-forget: a client whose send buffer is full is dropped
// and re-syncs over HTTP on reconnect.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run owns all access to the client set. Start it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Info("client connected", zap.String("clientId", c.id), zap.Int("clients", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Info("client disconnected", zap.String("clientId", c.id), zap.Int("clients", len(h.clients)))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
					h.logger.Warn("dropping slow client", zap.String("clientId", c.id))
				}
			}
		}
	}
}

// Publish marshals the event envelope and queues it for broadcast. It never
// blocks the caller; if the broadcast queue is full the event is dropped.
func (h *Hub) Publish(event string, payload any) {
	msg, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		h.logger.Error("marshal broadcast", zap.String("event", event), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("broadcast queue full, dropping event", zap.String("event", event))
	}
}

// HandleWS upgrades the connection and attaches it to the hub. No
// client-to-server events are consumed; reads only service pings and close.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade", zap.Error(err))
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- cl

	go cl.writePump()
	go cl.readPump(h)
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

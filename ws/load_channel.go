package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

// LoadChannelHub fans persisted chat messages out to everyone watching a
// load. Messages are saved before broadcast, so the transcript stays the
// source of truth and a reconnect just re-lists it.
type LoadChannelHub struct {
	clients    map[uint]map[*websocket.Conn]bool // loadID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	chat       *services.ChatService
}

type Subscription struct {
	Conn   *websocket.Conn
	LoadID uint
	UserID uint
	Caps   utils.Capabilities
}

type BroadcastMessage struct {
	LoadID  uint
	Message *entity.ChatMessage
}

func NewLoadChannelHub(chat *services.ChatService) *LoadChannelHub {
	return &LoadChannelHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		chat:       chat,
	}
}

func (h *LoadChannelHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.LoadID] == nil {
				h.clients[sub.LoadID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.LoadID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.LoadID][sub.Conn]; ok {
				delete(h.clients[sub.LoadID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.LoadID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.LoadID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish pushes an already-persisted message to subscribers. Used by the
// REST append path so both entry points share one fan-out.
func (h *LoadChannelHub) Publish(loadID uint, msg *entity.ChatMessage) {
	h.broadcast <- BroadcastMessage{LoadID: loadID, Message: msg}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/loads/:id
func (h *LoadChannelHub) HandleWebSocket(c *gin.Context) {
	loadID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid load id"})
		return
	}
	loadID := uint(loadID64)

	userID := utils.CurrentUserID(c)
	caps := utils.CurrentCapabilities(c)

	// subscribing needs at least read access to the transcript; posting is
	// re-checked per message
	if _, err := h.chat.ListMessages(caps, loadID); err != nil {
		switch err {
		case services.ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "load not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, LoadID: loadID, UserID: userID, Caps: caps}
	h.register <- sub

	go h.listenMessages(sub)
}

func (h *LoadChannelHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("invalid payload: %v", err)
			continue
		}

		// sender identity comes from the token, never the payload
		msg, err := h.chat.PostMessage(sub.Caps, sub.LoadID, sub.UserID, payload.Message)
		if err != nil {
			log.Printf("save msg error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{LoadID: sub.LoadID, Message: msg}
	}
}

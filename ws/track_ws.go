package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/repository"
	"github.com/Nitin6404/sryzen-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

// TrackHub fans order status changes out to websocket subscribers.
// One room per order id.
type TrackHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex

	orders *repository.OrderRepository
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type StatusUpdate struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
	At      time.Time          `json:"at"`
}

func NewTrackHub(orders *repository.OrderRepository) *TrackHub {
	return &TrackHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		orders:     orders,
	}
}

func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusNotifier.
func (h *TrackHub) OrderStatusChanged(orderID uint, status entity.OrderStatus) {
	h.broadcast <- StatusUpdate{OrderID: orderID, Status: status, At: time.Now()}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CanTrack reports whether the user may subscribe to the order's
// stream: the order's owner, or an admin.
func (h *TrackHub) CanTrack(userID uint, role string, orderID uint) (bool, error) {
	o, err := h.orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return role == "admin" || o.UserID == userID, nil
}

// WS route: /ws/orders/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(id)

	ok, err := h.CanTrack(utils.CurrentUserID(c), utils.CurrentRole(c), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "load order"})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	// Drain reads until the client goes away.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

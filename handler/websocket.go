package handler

import (
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[uint]map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// NotificationSocket keeps one room per user and streams booking events to it.
func NotificationSocket(c *websocket.Conn) {
	id64, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		c.Close()
		return
	}
	userId := uint(id64)

	defer func() {
		wsMu.Lock()
		if wsClients[userId] != nil {
			delete(wsClients[userId], c)
		}
		wsMu.Unlock()
		c.Close()
	}()

	wsMu.Lock()
	if wsClients[userId] == nil {
		wsClients[userId] = make(map[*websocket.Conn]bool)
	}
	wsClients[userId][c] = true
	wsMu.Unlock()

	// Hold the connection open; the client does not send anything we act on.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastToUser pushes a payload to every open socket of one user.
func BroadcastToUser(userId uint, payload any) {
	wsMu.Lock()
	defer wsMu.Unlock()

	for conn := range wsClients[userId] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("dropping dead websocket for user %d: %v", userId, err)
			conn.Close()
			delete(wsClients[userId], conn)
		}
	}
}

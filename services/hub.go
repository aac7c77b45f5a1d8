package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans chat events out to websocket clients grouped by campaign. It is
// the only background goroutine in the system; everything else runs on the
// request path.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

type Client struct {
	hub        *Hub
	id         string
	socket     *websocket.Conn
	send       chan []byte
	campaignID uint
	userID     uint
	userName   string
}

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %s connected to campaign %d (user %d: %s)", client.id, client.campaignID, client.userID, client.userName)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Client %s disconnected from campaign %d (user %d: %s)", client.id, client.campaignID, client.userID, client.userName)
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastToCampaign sends an event to every client connected to the
// campaign. Clients with a full send buffer are dropped.
func (h *Hub) BroadcastToCampaign(campaignID uint, eventType string, payload interface{}) {
	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mutex.Lock()
	for client := range h.clients {
		if client.campaignID != campaignID {
			continue
		}
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
	h.mutex.Unlock()
}

func (h *Hub) ConnectedUsers(campaignID uint) []uint {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	var userIDs []uint
	for client := range h.clients {
		if client.campaignID == campaignID {
			userIDs = append(userIDs, client.userID)
		}
	}
	return userIDs
}

func (h *Hub) RegisterClient(conn *websocket.Conn, campaignID, userID uint, userName string) *Client {
	client := &Client{
		hub:        h,
		id:         uuid.NewString(),
		socket:     conn,
		send:       make(chan []byte, 256),
		campaignID: campaignID,
		userID:     userID,
		userName:   userName,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	for {
		_, data, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			log.Printf("Error unmarshaling event: %v", err)
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handleEvent(event Event) {
	switch event.Type {
	case "ping":
		response := Event{Type: "pong", Payload: "pong"}
		data, _ := json.Marshal(response)
		c.send <- data

	default:
		log.Printf("Unknown event type %q from user %d in campaign %d", event.Type, c.userID, c.campaignID)
	}
}

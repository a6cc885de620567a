package ws

import (
	"log"
)

type threadMessage struct {
	threadID string
	payload  []byte
}

type subscription struct {
	client   *Client
	threadID string
	active   bool
}

// Hub tracks connected clients and which contact-request threads each one
// subscribed to. All membership changes go through the run loop, so no
// locking is needed on the maps.
type Hub struct {
	clients    map[*Client]map[string]bool
	broadcast  chan threadMessage
	register   chan *Client
	unregister chan *Client
	subscribe  chan subscription
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]map[string]bool),
		broadcast:  make(chan threadMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		subscribe:  make(chan subscription, 128),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.clients[client] = make(map[string]bool)
			log.Printf("ws client connected, total=%d", len(h.clients))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			log.Printf("ws client disconnected, total=%d", len(h.clients))

		case sub := <-h.subscribe:
			threads, ok := h.clients[sub.client]
			if !ok {
				continue
			}
			if sub.active {
				threads[sub.threadID] = true
			} else {
				delete(threads, sub.threadID)
			}

		case msg := <-h.broadcast:
			for client, threads := range h.clients {
				if !threads[msg.threadID] {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer, drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Subscribe(client *Client, threadID string, active bool) {
	if h == nil {
		return
	}
	h.subscribe <- subscription{client: client, threadID: threadID, active: active}
}

// BroadcastToThread never blocks; when the buffer is full the event is
// dropped and logged.
func (h *Hub) BroadcastToThread(threadID string, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- threadMessage{threadID: threadID, payload: payload}:
	default:
		log.Printf("ws broadcast dropped, thread=%s", threadID)
	}
}

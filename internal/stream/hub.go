package stream

import (
	"sync"

	"github.com/gtawatch/incident-watch/internal/models"
)

// Размер буфера подписчика. Отстающий подписчик теряет события,
// а не блокирует остальных.
const subscriberBuffer = 16

// Hub раздает события вставки всем активным подписчикам.
// Каждое событие доставляется каждому подписчику ровно один раз.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan *models.Incident]struct{}
}

// NewHub создает новый Hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan *models.Incident]struct{}),
	}
}

// Subscribe регистрирует подписчика. Возвращенный канал закрывается
// только через Unsubscribe; подписчик обязан освободить подписку при уходе.
func (h *Hub) Subscribe() chan *models.Incident {
	ch := make(chan *models.Incident, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe снимает подписку и закрывает канал подписчика
func (h *Hub) Unsubscribe(ch chan *models.Incident) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast рассылает инцидент всем подписчикам
func (h *Hub) Broadcast(incident *models.Incident) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- incident:
		default:
			// Буфер переполнен: событие для этого подписчика пропускается.
		}
	}
}

// Len возвращает текущее количество подписчиков
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

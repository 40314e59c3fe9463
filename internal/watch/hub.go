package watch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType identifica a coleção que sofreu mutação
type EventType string

const (
	EventMetrics        EventType = "metrics"
	EventMonthlyEntries EventType = "monthly_entries"
	EventCustomEntries  EventType = "custom_entries"
)

// Event é a notificação de mudança entregue aos assinantes. Não carrega o
// documento alterado: o assinante relê o snapshot completo, como no
// mecanismo de subscription do store.
type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}

// Publisher é o contrato usado pelos usecases para notificar mutações
type Publisher interface {
	Publish(userID string, eventType EventType)
}

// Hub distribui eventos de mudança por usuário. Assinantes que param de
// observar (logout, desconexão) devem cancelar a assinatura para não agir
// sobre dados de um usuário antigo.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[int]chan Event
	nextID int
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[int]chan Event),
	}
}

// Subscribe registra um assinante para os eventos do usuário. O canal é
// fechado quando o contexto é cancelado ou quando unsubscribe é chamado.
func (h *Hub) Subscribe(ctx context.Context, userID string) (<-chan Event, func()) {
	h.mu.Lock()

	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan Event)
	}

	id := h.nextID
	h.nextID++

	// Buffer pequeno: eventos são gatilhos de releitura de snapshot,
	// perder um evento coalescido não perde dado
	ch := make(chan Event, 8)
	h.subs[userID][id] = ch

	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if subs, ok := h.subs[userID]; ok {
				if c, ok := subs[id]; ok {
					delete(subs, id)
					close(c)
				}
				if len(subs) == 0 {
					delete(h.subs, userID)
				}
			}
		})
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return ch, unsubscribe
}

// Publish entrega o evento a todos os assinantes do usuário. Entrega é
// best-effort: assinante com buffer cheio perde o evento e se reconcilia
// na próxima releitura.
func (h *Hub) Publish(userID string, eventType EventType) {
	event := Event{
		Type:   eventType,
		UserID: userID,
		At:     time.Now(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[userID] {
		select {
		case ch <- event:
		default:
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"type":    eventType,
			}).Debug("Assinante lento, evento de mudança descartado")
		}
	}
}

// SubscriberCount retorna o número de assinantes ativos do usuário
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

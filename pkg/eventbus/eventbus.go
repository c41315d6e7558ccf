package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event, sistem içindeki herhangi bir olaydır.
type Event interface {
	Name() string
}

// Listener, bir olayı işleyen fonksiyondur.
type Listener func(ctx context.Context, event Event) error

// Bus, olayları dinleyicilere asenkron dağıtır. Publish hiçbir zaman bloklamaz;
// dinleyici hataları loglanır, yayıncıya geri dönmez.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			// Sonsuz goroutine birikmesin diye dinleyiciye üst sınır verilir.
			ctxWithTimeout, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("Olay dinleyicisi hata döndürdü",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

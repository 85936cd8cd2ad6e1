package progress

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/icedraw/schedgen/internal/core/models"
)

// WebSocketSink forwards progress events over a single already-open
// websocket connection, throttled so a fast-ticking optimizer loop
// cannot flood a slow client.
type WebSocketSink struct {
	conn    *websocket.Conn
	limiter *rate.Limiter
	log     *logrus.Entry

	mu sync.Mutex
}

// NewWebSocketSink wraps conn, allowing at most burst events
// immediately and then one every 1/eventsPerSecond.
func NewWebSocketSink(conn *websocket.Conn, eventsPerSecond float64, burst int, log *logrus.Entry) *WebSocketSink {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &WebSocketSink{
		conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
		log:     log,
	}
}

// Emit sends event as JSON if the rate limiter currently allows it.
// A throttled event is dropped silently; a failed send is logged and
// dropped. Neither is retried.
func (w *WebSocketSink) Emit(event models.ProgressEvent) {
	if w == nil || w.conn == nil {
		return
	}
	if !w.limiter.Allow() {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		w.log.WithError(err).Warn("progress: failed to marshal event")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	if err := w.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		w.log.WithError(err).Warn("progress: failed to write event")
	}
}

package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new channel. Without this, a stalled connection would block the
// subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// reconnectDelay is how long the receive loop waits before re-establishing a
// dropped LISTEN connection.
const reconnectDelay = 2 * time.Second

// HandlerFunc consumes one NOTIFY payload. Handlers run on the listener's
// receive goroutine and must not block; hand off long work to a worker pool.
type HandlerFunc func(payload []byte)

// listenCmd represents a LISTEN command to be executed by the receive loop,
// which is the sole goroutine that touches the pgx connection.
type listenCmd struct {
	channel string
	result  chan error
}

// Listener owns a dedicated PostgreSQL connection in LISTEN mode and
// dispatches notifications to registered handlers. Cache managers register
// their invalidation handlers before Start; late Subscribe calls are
// serialized through the receive loop to avoid the "conn busy" race between
// WaitForNotification and Exec.
type Listener struct {
	connString string

	mu       sync.RWMutex
	handlers map[string][]HandlerFunc

	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a listener for the given connection string.
func NewListener(connString string) *Listener {
	return &Listener{
		connString: connString,
		handlers:   make(map[string][]HandlerFunc),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Subscribe registers a handler for a channel. If the listener is already
// running, the LISTEN command is forwarded to the receive loop; otherwise it
// is issued when Start establishes the connection.
func (l *Listener) Subscribe(channel string, fn HandlerFunc) error {
	l.mu.Lock()
	_, known := l.handlers[channel]
	l.handlers[channel] = append(l.handlers[channel], fn)
	l.mu.Unlock()

	if known || !l.running.Load() {
		return nil
	}

	cmd := listenCmd{channel: channel, result: make(chan error, 1)}
	select {
	case l.cmdCh <- cmd:
	case <-time.After(listenTimeout):
		return fmt.Errorf("timed out queueing LISTEN for %s", channel)
	}
	select {
	case err := <-cmd.result:
		return err
	case <-time.After(listenTimeout):
		return fmt.Errorf("timed out waiting for LISTEN on %s", channel)
	}
}

// Start establishes the dedicated LISTEN connection, issues LISTEN for every
// registered channel, and begins receiving notifications.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	if err := l.listenAll(ctx, conn); err != nil {
		_ = conn.Close(ctx)
		return err
	}

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx, conn)
	}()

	slog.Info("PubSub listener started", "channels", l.channelCount())
	return nil
}

// Stop shuts down the receive loop and closes the connection.
func (l *Listener) Stop(ctx context.Context) {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		select {
		case <-l.loopDone:
		case <-time.After(listenTimeout):
			slog.Warn("PubSub listener did not stop within timeout")
		}
	}
	slog.Info("PubSub listener stopped")
}

// receiveLoop is the sole user of the pgx connection. It waits for
// notifications, executes queued LISTEN commands between waits, and
// reconnects on connection loss.
func (l *Listener) receiveLoop(ctx context.Context, conn *pgx.Conn) {
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-l.cmdCh:
			cmdCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			_, err := conn.Exec(cmdCtx, fmt.Sprintf(`LISTEN %s`, pgx.Identifier{cmd.channel}.Sanitize()))
			cancel()
			cmd.result <- err
		default:
		}

		// Bounded wait so queued LISTEN commands are picked up promptly.
		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // Poll timeout, not a failure.
			}
			slog.Warn("LISTEN connection lost, reconnecting", "error", err)
			next, recErr := l.reconnect(ctx)
			if recErr != nil {
				return
			}
			_ = conn.Close(ctx)
			conn = next
			continue
		}

		l.dispatch(notification.Channel, []byte(notification.Payload))
	}
}

// reconnect re-establishes the LISTEN connection with backoff, retrying until
// the context is cancelled.
func (l *Listener) reconnect(ctx context.Context) (*pgx.Conn, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(reconnectDelay):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Warn("LISTEN reconnect failed", "error", err)
			continue
		}
		if err := l.listenAll(ctx, conn); err != nil {
			slog.Warn("LISTEN re-subscribe failed", "error", err)
			_ = conn.Close(ctx)
			continue
		}
		slog.Info("LISTEN connection re-established")
		return conn, nil
	}
}

// listenAll issues LISTEN for every registered channel on a fresh connection.
func (l *Listener) listenAll(ctx context.Context, conn *pgx.Conn) error {
	l.mu.RLock()
	channels := make([]string, 0, len(l.handlers))
	for ch := range l.handlers {
		channels = append(channels, ch)
	}
	l.mu.RUnlock()

	for _, ch := range channels {
		if _, err := conn.Exec(ctx, fmt.Sprintf(`LISTEN %s`, pgx.Identifier{ch}.Sanitize())); err != nil {
			return fmt.Errorf("LISTEN %s failed: %w", ch, err)
		}
	}
	return nil
}

// dispatch fans one notification out to the channel's handlers.
func (l *Listener) dispatch(channel string, payload []byte) {
	l.mu.RLock()
	handlers := l.handlers[channel]
	l.mu.RUnlock()

	for _, fn := range handlers {
		fn(payload)
	}
}

func (l *Listener) channelCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.handlers)
}

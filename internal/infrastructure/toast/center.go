// Package toast implementa el tablero de notificaciones transitorias de la consola.
package toast

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-admin/internal/application/ports"
)

// Verificar en tiempo de compilación que Center implementa NoticeBoard.
var _ ports.NoticeBoard = (*Center)(nil)

// DefaultAutoClose vida de una notificación resuelta.
const DefaultAutoClose = 5 * time.Second

type entry struct {
	notice   ports.Notice
	settled  time.Time // zero mientras está pendiente
	expireAt time.Time
}

// Center guarda las notificaciones de una sesión. Las pendientes no expiran;
// las resueltas se ocultan autoClose después de resolverse.
type Center struct {
	mu        sync.Mutex
	entries   []*entry
	autoClose time.Duration
	now       func() time.Time
}

// NewCenter construye un Center. autoClose <= 0 usa DefaultAutoClose.
func NewCenter(autoClose time.Duration) *Center {
	if autoClose <= 0 {
		autoClose = DefaultAutoClose
	}
	return &Center{autoClose: autoClose, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (c *Center) WithClock(now func() time.Time) *Center {
	c.now = now
	return c
}

// Promise muestra msgs.Pending, ejecuta op y convierte la misma notificación en
// Success o Error. Devuelve el error de op tal cual.
func (c *Center) Promise(ctx context.Context, msgs ports.PromiseMessages, op func(ctx context.Context) error) error {
	e := c.push(ports.NoticePending, msgs.Pending, false)

	err := op(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if err != nil {
		e.notice.Kind = ports.NoticeError
		e.notice.Message = msgs.Error
	} else {
		e.notice.Kind = ports.NoticeSuccess
		e.notice.Message = msgs.Success
	}
	e.settled = now
	e.expireAt = now.Add(c.autoClose)
	return err
}

// Error muestra una notificación de error de un solo disparo.
func (c *Center) Error(msg string) {
	c.push(ports.NoticeError, msg, true)
}

// Visible devuelve las notificaciones vivas en orden de creación y purga las expiradas.
func (c *Center) Visible(now time.Time) []ports.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.entries[:0]
	out := make([]ports.Notice, 0, len(c.entries))
	for _, e := range c.entries {
		if !e.settled.IsZero() && !now.Before(e.expireAt) {
			continue
		}
		live = append(live, e)
		out = append(out, e.notice)
	}
	c.entries = live
	return out
}

// Dismiss elimina una notificación. Devuelve false si no existe.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.notice.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) push(kind ports.NoticeKind, msg string, settled bool) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	e := &entry{notice: ports.Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: now,
	}}
	if settled {
		e.settled = now
		e.expireAt = now.Add(c.autoClose)
	}
	c.entries = append(c.entries, e)
	return e
}

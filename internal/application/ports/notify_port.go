package ports

import (
	"context"
	"time"
)

// PromiseMessages textos de las tres fases de una notificación ligada a una operación.
type PromiseMessages struct {
	Pending string
	Success string
	Error   string
}

// Notifier muestra notificaciones transitorias al usuario.
type Notifier interface {
	// Promise muestra Pending, ejecuta op y reemplaza la notificación por Success o
	// Error según el resultado. Devuelve el error de op sin modificarlo.
	Promise(ctx context.Context, msgs PromiseMessages, op func(ctx context.Context) error) error
	// Error muestra una notificación de error de un solo disparo.
	Error(msg string)
}

// Confirmer pide confirmación interactiva antes de una acción destructiva.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// NoticeKind fase de una notificación.
type NoticeKind string

const (
	NoticePending NoticeKind = "pending"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice notificación visible para el usuario.
type Notice struct {
	ID        string
	Kind      NoticeKind
	Message   string
	CreatedAt time.Time
}

// NoticeBoard Notifier que además expone las notificaciones vivas para renderizarlas.
type NoticeBoard interface {
	Notifier
	Visible(now time.Time) []Notice
	Dismiss(id string) bool
}

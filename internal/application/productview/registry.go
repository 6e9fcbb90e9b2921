package productview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-admin/internal/application/ports"
)

// Session una vista montada para una sesión de navegador, con sus notificaciones.
type Session struct {
	ID      string
	View    *ProductListView
	Notices ports.NoticeBoard

	lastSeen time.Time
}

// SessionFactory construye la vista y el tablero de notificaciones de una sesión nueva.
type SessionFactory func() (*ProductListView, ports.NoticeBoard)

// Registry guarda una ProductListView por sesión. Las sesiones inactivas más de ttl
// se desmontan y eliminan en el siguiente acceso al registro.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	build    SessionFactory
	now      func() time.Time
}

// NewRegistry construye el registro. ttl <= 0 desactiva la expiración.
func NewRegistry(ttl time.Duration, build SessionFactory) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		build:    build,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Open devuelve la sesión id, creándola si no existe o si id está vacío / no es un UUID.
func (r *Registry) Open(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)

	if s, ok := r.sessions[id]; ok {
		s.lastSeen = now
		return s
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	view, notices := r.build()
	s := &Session{ID: id, View: view, Notices: notices, lastSeen: now}
	r.sessions[id] = s
	return s
}

// Get devuelve la sesión id si sigue viva.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)

	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = now
	}
	return s, ok
}

// Leave desmonta y elimina la sesión. Devuelve false si no existía.
func (r *Registry) Leave(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.View.Unmount()
	}
	return ok
}

// Len número de sesiones vivas.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweepLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			s.View.Unmount()
			delete(r.sessions, id)
		}
	}
}

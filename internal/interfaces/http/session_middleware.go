package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-admin/internal/application/productview"
)

// SessionCookie nombre de la cookie que identifica la vista del navegador.
const SessionCookie = "pl_session"

// LocalSession key de Locals para la sesión de la vista.
const LocalSession = "pl_session"

// SessionMiddleware abre (o crea) la sesión de la vista y la deja en c.Locals.
// Si el ID de la cookie no existe o no es válido se emite una cookie nueva.
func SessionMiddleware(reg *productview.Registry, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := c.Cookies(SessionCookie)
		s := reg.Open(current)
		if s.ID != current {
			cookie := &fiber.Cookie{
				Name:     SessionCookie,
				Value:    s.ID,
				Path:     "/admin",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			}
			if ttl > 0 {
				cookie.MaxAge = int(ttl.Seconds())
			}
			c.Cookie(cookie)
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devuelve la sesión de la vista (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *productview.Session {
	s, _ := c.Locals(LocalSession).(*productview.Session)
	return s
}

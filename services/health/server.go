package health

import (
	"github.com/auralisbot/auralis/core/usage"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/mudler/xlog"
)

type Source interface {
	Stats() usage.Stats
}

// Server exposes read-only liveness and usage probes.
type Server struct {
	*fiber.App
	source Source
	quota  int
}

func NewServer(source Source, quota int) *Server {
	s := &Server{
		App: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		source: source,
		quota:  quota,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.Get("/stats", func(c *fiber.Ctx) error {
		st := s.source.Stats()
		return c.JSON(fiber.Map{
			"users":    st.Users,
			"messages": st.Messages,
			"quota":    s.quota,
		})
	})
}

// ListenInBackground serves on addr until the server is shut down.
func (s *Server) ListenInBackground(addr string) {
	go func() {
		xlog.Info("Health server listening", "addr", addr)
		if err := s.Listen(addr); err != nil {
			xlog.Error("Health server stopped", "error", err)
		}
	}()
}

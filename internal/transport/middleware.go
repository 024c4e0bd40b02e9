package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

const (
	cookieName = "jwt"
	claimsKey  = "claims"
)

var censoredKeys = []string{"password"}

// AuthMiddleware lets the request through only with a valid session cookie.
// The decoded claims are stored in the request locals.
func (s *HTTPServer) AuthMiddleware(c *fiber.Ctx) error {
	claims, err := s.auth.ParseToken(c.Cookies(cookieName))
	if err != nil {
		return service.ErrUnauthorized
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

func (s *HTTPServer) LogRequest(c *fiber.Ctx) error {
	start := time.Now()

	if chainErr := c.Next(); chainErr != nil {
		if err := s.ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(http.StatusInternalServerError)
		}
	}

	s.logger.Infow("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start),
	)
	if len(c.Body()) > 0 {
		s.logger.Debugw("request body", "path", c.Path(), "body", string(censorBody(c.Body())))
	}
	return nil
}

// censorBody masks credentials in a JSON object body. Anything else is
// returned unchanged.
func censorBody(b []byte) []byte {
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return b
	}
	found := false
	for _, key := range censoredKeys {
		if _, ok := m[key]; ok {
			m[key] = "$censored"
			found = true
		}
	}
	if !found {
		return b
	}
	out, err := json.Marshal(m)
	if err != nil {
		return b
	}
	return out
}

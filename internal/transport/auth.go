package transport

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) Register(c *fiber.Ctx) error {
	req := models.AuthReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.auth.Register(c.UserContext(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Firstname: req.Firstname,
	})
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *HTTPServer) Login(c *fiber.Ctx) error {
	req := models.LoginReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := s.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(models.MessageResp{Message: "success"})
}

func (s *HTTPServer) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(models.MessageResp{Message: "success"})
}

func (s *HTTPServer) CurrentUser(c *fiber.Ctx) error {
	user, err := s.auth.CurrentUser(c.UserContext(), c.Cookies(cookieName))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

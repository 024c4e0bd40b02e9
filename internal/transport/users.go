package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) UserList(c *fiber.Ctx) error {
	users, err := s.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (s *HTTPServer) UserGet(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *HTTPServer) UserCreate(c *fiber.Ctx) error {
	req := models.AuthReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := s.users.Create(c.UserContext(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Firstname: req.Firstname,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (s *HTTPServer) UserUpdate(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	req := models.UserPatchReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := s.users.Update(c.UserContext(), id, db.UserEdit{
		Name:      req.Name,
		Firstname: req.Firstname,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *HTTPServer) UserDelete(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	ok, err := s.users.Delete(c.UserContext(), id)
	return deleted(c, ok, err)
}

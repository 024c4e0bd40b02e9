package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) GroupeList(c *fiber.Ctx) error {
	groupes, err := s.groupes.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(groupes)
}

func (s *HTTPServer) GroupeListByRepertoire(c *fiber.Ctx) error {
	repertoireID, err := GetUUIDParam(c, "repertoireId")
	if err != nil {
		return err
	}
	groupes, err := s.groupes.ListByRepertoire(c.UserContext(), repertoireID)
	if err != nil {
		return err
	}
	return c.JSON(groupes)
}

func (s *HTTPServer) GroupeGet(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	groupe, err := s.groupes.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(groupe)
}

func (s *HTTPServer) GroupeCreate(c *fiber.Ctx) error {
	req := models.GroupeReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	groupe, err := s.groupes.Create(c.UserContext(), service.CreateGroupeInput{
		RepertoireID: req.RepertoireID,
		Label:        req.Label,
		Color:        req.Color,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(groupe)
}

func (s *HTTPServer) GroupeUpdate(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	req := models.GroupePatchReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	groupe, err := s.groupes.Update(c.UserContext(), id, db.GroupeEdit{
		Label: req.Label,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(groupe)
}

func (s *HTTPServer) GroupeDelete(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	ok, err := s.groupes.Delete(c.UserContext(), id)
	return deleted(c, ok, err)
}

package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) TacheList(c *fiber.Ctx) error {
	taches, err := s.taches.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(taches)
}

func (s *HTTPServer) TacheListByGroupe(c *fiber.Ctx) error {
	groupeID, err := GetUUIDParam(c, "groupeId")
	if err != nil {
		return err
	}
	taches, err := s.taches.ListByGroupe(c.UserContext(), groupeID)
	if err != nil {
		return err
	}
	return c.JSON(taches)
}

func (s *HTTPServer) TacheGet(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	tache, err := s.taches.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(tache)
}

func (s *HTTPServer) TacheCreate(c *fiber.Ctx) error {
	req := models.TacheReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	tache, err := s.taches.Create(c.UserContext(), service.CreateTacheInput{
		GroupeID: req.GroupeID,
		Label:    req.Label,
		Detail:   req.Detail,
		Date:     req.Date,
		LabelIDs: req.Labels,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(tache)
}

func (s *HTTPServer) TacheUpdate(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	req := models.TachePatchReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	tache, err := s.taches.Update(c.UserContext(), id, db.TacheEdit{
		Label:  req.Label,
		Detail: req.Detail,
		Date:   req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(tache)
}

func (s *HTTPServer) TacheDelete(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	ok, err := s.taches.Delete(c.UserContext(), id)
	return deleted(c, ok, err)
}

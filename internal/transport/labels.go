package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) LabelList(c *fiber.Ctx) error {
	labels, err := s.labels.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(labels)
}

func (s *HTTPServer) LabelListByRepertoire(c *fiber.Ctx) error {
	repertoireID, err := GetUUIDParam(c, "repertoireId")
	if err != nil {
		return err
	}
	labels, err := s.labels.ListByRepertoire(c.UserContext(), repertoireID)
	if err != nil {
		return err
	}
	return c.JSON(labels)
}

func (s *HTTPServer) LabelListByTache(c *fiber.Ctx) error {
	tacheID, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	labels, err := s.labels.ListByTache(c.UserContext(), tacheID)
	if err != nil {
		return err
	}
	return c.JSON(labels)
}

func (s *HTTPServer) LabelGet(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	label, err := s.labels.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(label)
}

func (s *HTTPServer) LabelCreate(c *fiber.Ctx) error {
	req := models.LabelReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	label, err := s.labels.Create(c.UserContext(), service.CreateLabelInput{
		RepertoireID: req.RepertoireID,
		Label:        req.Label,
		Color:        req.Color,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(label)
}

// LabelAttach returns the tache with its updated label set.
func (s *HTTPServer) LabelAttach(c *fiber.Ctx) error {
	labelID, tacheID, err := labelTacheParams(c)
	if err != nil {
		return err
	}
	tache, err := s.labels.Attach(c.UserContext(), labelID, tacheID)
	if err != nil {
		return err
	}
	return c.JSON(tache)
}

func (s *HTTPServer) LabelDetach(c *fiber.Ctx) error {
	labelID, tacheID, err := labelTacheParams(c)
	if err != nil {
		return err
	}
	tache, err := s.labels.Detach(c.UserContext(), labelID, tacheID)
	if err != nil {
		return err
	}
	return c.JSON(tache)
}

func (s *HTTPServer) LabelUpdate(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	req := models.LabelPatchReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	label, err := s.labels.Update(c.UserContext(), id, db.LabelEdit{
		Label: req.Label,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(label)
}

func (s *HTTPServer) LabelDelete(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	ok, err := s.labels.Delete(c.UserContext(), id)
	return deleted(c, ok, err)
}

func labelTacheParams(c *fiber.Ctx) (string, string, error) {
	labelID, err := GetUUIDParam(c, "labelId")
	if err != nil {
		return "", "", err
	}
	tacheID, err := GetUUIDParam(c, "tacheId")
	if err != nil {
		return "", "", err
	}
	return labelID, tacheID, nil
}

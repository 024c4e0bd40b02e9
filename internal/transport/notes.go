package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

func (s *HTTPServer) NoteList(c *fiber.Ctx) error {
	notes, err := s.notes.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (s *HTTPServer) NoteListByRepertoire(c *fiber.Ctx) error {
	repertoireID, err := GetUUIDParam(c, "repertoireId")
	if err != nil {
		return err
	}
	notes, err := s.notes.ListByRepertoire(c.UserContext(), repertoireID)
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (s *HTTPServer) NoteGet(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	note, err := s.notes.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *HTTPServer) NoteCreate(c *fiber.Ctx) error {
	req := models.NoteReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	note, err := s.notes.Create(c.UserContext(), service.CreateNoteInput{
		RepertoireID: req.RepertoireID,
		Label:        req.Label,
		Message:      req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(note)
}

func (s *HTTPServer) NoteUpdate(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	req := models.NotePatchReq{}
	if err := s.BindAndValidate(c, &req); err != nil {
		return err
	}
	note, err := s.notes.Update(c.UserContext(), id, db.NoteEdit{
		Label:   req.Label,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *HTTPServer) NoteDelete(c *fiber.Ctx) error {
	id, err := GetUUIDParam(c, "id")
	if err != nil {
		return err
	}
	ok, err := s.notes.Delete(c.UserContext(), id)
	return deleted(c, ok, err)
}

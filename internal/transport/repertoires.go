package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

// repertoireRoutes mounts the same handlers for both kinds of directory.
func (s *HTTPServer) repertoireRoutes(g fiber.Router, svc *service.Repertoires) {
	g.Get("", func(c *fiber.Ctx) error {
		reps, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(reps)
	})

	g.Get("/user/:id_user", func(c *fiber.Ctx) error {
		userID, err := GetUUIDParam(c, "id_user")
		if err != nil {
			return err
		}
		reps, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return c.JSON(reps)
	})

	g.Get("/:id", func(c *fiber.Ctx) error {
		id, err := GetUUIDParam(c, "id")
		if err != nil {
			return err
		}
		rep, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(rep)
	})

	g.Post("", func(c *fiber.Ctx) error {
		req := models.RepertoireReq{}
		if err := s.BindAndValidate(c, &req); err != nil {
			return err
		}
		rep, err := svc.Create(c.UserContext(), req.UserID, req.Label)
		if err != nil {
			return err
		}
		return c.Status(http.StatusCreated).JSON(rep)
	})

	g.Patch("/:id", func(c *fiber.Ctx) error {
		id, err := GetUUIDParam(c, "id")
		if err != nil {
			return err
		}
		req := models.RepertoirePatchReq{}
		if err := s.BindAndValidate(c, &req); err != nil {
			return err
		}
		rep, err := svc.Update(c.UserContext(), id, db.RepertoireEdit{Label: req.Label})
		if err != nil {
			return err
		}
		return c.JSON(rep)
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := GetUUIDParam(c, "id")
		if err != nil {
			return err
		}
		ok, err := svc.Delete(c.UserContext(), id)
		return deleted(c, ok, err)
	})
}

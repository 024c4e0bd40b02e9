package transport

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/models"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Absent and null patch fields reach the rules as nil, so omitempty skips them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if raw, ok := field.Interface().(patch.Raw); ok {
			return raw.Raw()
		}
		return nil
	}, patch.Field[string]{}, patch.Field[time.Time]{})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *HTTPServer) BindAndValidate(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return s.validator.Validate(v)
}

func GetParam(c *fiber.Ctx, name string) (string, error) {
	value := c.Params(name)
	if value == "" {
		return "", fiber.NewError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

// GetUUIDParam returns the canonical form of a uuid path parameter.
func GetUUIDParam(c *fiber.Ctx, name string) (string, error) {
	v, err := GetParam(c, name)
	if err != nil {
		return "", err
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "path param '"+name+"' must be a uuid")
	}
	return id.String(), nil
}

func deleted(c *fiber.Ctx, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return fiber.ErrNotFound
	}
	return c.JSON(models.DeleteResp{Deleted: true})
}

// ErrorHandler maps service errors to statuses. Authentication failures all
// produce the same body.
func (s *HTTPServer) ErrorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, message = fe.Code, fe.Message
	case errors.Is(err, service.ErrNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		code, message = http.StatusUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrUnauthorized):
		code, message = http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)
	case errors.Is(err, service.ErrForeignLabel):
		code, message = http.StatusBadRequest, service.ErrForeignLabel.Error()
	case errors.Is(err, service.ErrEmailTaken):
		code, message = http.StatusConflict, service.ErrEmailTaken.Error()
	}

	if code >= http.StatusInternalServerError {
		s.logger.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(models.MessageResp{Message: message})
}

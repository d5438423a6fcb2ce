package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	dto "taskboard.com/taskboard/internal/data_models"
	model "taskboard.com/taskboard/internal/models"
)

func (h *Handler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("list contacts failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list contacts")
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *Handler) CreateContact(c echo.Context) error {
	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Firstname == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "firstname is required")
	}
	if !strings.Contains(req.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}

	contact, err := h.contactService.Create(c.Request().Context(), &req)
	if err != nil {
		log.WithError(err).Error("create contact failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create contact")
	}
	return c.JSON(http.StatusCreated, contact)
}

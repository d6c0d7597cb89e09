package handler

import (
	"net/http"

	"vastram/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 静的コンテンツとお問い合わせの公開API
type ContentHandler struct {
	uc *usecase.ContentUsecase
}

// DI
func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/about", h.about)
	e.GET("/events", h.events)
	e.POST("/contact", h.contact)
}

func (h *ContentHandler) about(c echo.Context) error {
	out, err := h.uc.GetAboutUs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) events(c echo.Context) error {
	out, err := h.uc.ListEvents(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SubmitContact(c.Request().Context(), usecase.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

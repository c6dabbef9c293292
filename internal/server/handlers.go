package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type reviewRequest struct {
	PRURL string `json:"pr_url"`
}

type uploadRequest struct {
	DiffText string `json:"diff_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleReview resuelve una URL de PR/MR y devuelve el reporte completo.
// Una falla de diff es un 400; una falla de metadata no es fatal y degrada
// a detalles sintetizados adentro del servicio.
func (s *Server) handleReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil || req.PRURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "PR URL is required"})
	}

	report, err := s.service.ReviewFromURL(c.Request().Context(), req.PRURL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, report)
}

// handleUpload genera el reporte a partir de un diff subido directamente.
func (s *Server) handleUpload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil || req.DiffText == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Diff text is required"})
	}

	report := s.service.ReviewFromDiff(c.Request().Context(), req.DiffText)
	return c.JSON(http.StatusOK, report)
}

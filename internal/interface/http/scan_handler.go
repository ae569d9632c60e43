package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phishguard/phishguard-api/internal/application"
	"github.com/phishguard/phishguard-api/internal/domain/entity"
	"github.com/phishguard/phishguard-api/pkg/response"
)

type ScanHandler struct {
	Svc    *application.ScanService
	Logger *logrus.Logger
}

func NewScanHandler(svc *application.ScanService, logger *logrus.Logger) *ScanHandler {
	return &ScanHandler{Svc: svc, Logger: logger}
}

type predictRequest struct {
	Text string `json:"text" binding:"required"`
	Type string `json:"type" binding:"required,oneof=url email"`
}

func (h *ScanHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Text and type are required")
		return
	}

	uid := c.GetString("userID")
	scan, err := h.Svc.Submit(c.Request.Context(), uid, req.Text, entity.InputType(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Text and type are required")
		case errors.Is(err, application.ErrPersistence):
			h.Logger.WithError(err).Error("scan persistence failed")
			response.Error(c, http.StatusInternalServerError, "Error saving scan")
		default:
			h.Logger.WithError(err).Error("scan request failed")
			response.Error(c, http.StatusInternalServerError, "Error processing scan request")
		}
		return
	}

	c.JSON(http.StatusOK, scan)
}

func (h *ScanHandler) History(c *gin.Context) {
	uid := c.GetString("userID")
	scans, err := h.Svc.History(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("history read failed")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, scans)
}

func (h *ScanHandler) Analytics(c *gin.Context) {
	stats, err := h.Svc.Analytics(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("analytics read failed")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, stats)
}

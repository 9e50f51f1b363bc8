package api

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jpsrealtor/cma/internal/models"
	"jpsrealtor/cma/internal/report"
)

// UserHeader carries the caller identity set by the session service.
const UserHeader = "X-User-Email"

type Handler struct {
	service *report.Service
	batch   *report.BatchProcessor
	logger  *logrus.Logger
}

func NewHandler(service *report.Service, batch *report.BatchProcessor, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		service: service,
		batch:   batch,
		logger:  logger,
	}
}

func errorResponse(c *gin.Context, err error) {
	var e *report.Error
	if !errors.As(err, &e) {
		e = &report.Error{Kind: report.KindInternal, Message: "internal error"}
	}
	c.JSON(e.Kind.HTTPStatus(), gin.H{
		"success": false,
		"error":   e,
	})
}

func validationError(c *gin.Context, message string) {
	errorResponse(c, &report.Error{Kind: report.KindValidation, Message: message})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GenerateCMA handles POST /api/cma.
func (h *Handler) GenerateCMA(c *gin.Context) {
	var req models.CMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid CMA request body")
		validationError(c, "invalid request body")
		return
	}
	req.UserEmail = strings.TrimSpace(c.GetHeader(UserHeader))

	result, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"listing_key": req.ListingKey,
			"slug":        req.Slug,
			"kind":        report.KindOf(err),
		}).Warn("CMA request failed")
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateBatchCMA handles POST /api/cma/batch.
func (h *Handler) GenerateBatchCMA(c *gin.Context) {
	var req models.BatchCMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid batch CMA request body")
		validationError(c, "invalid request body")
		return
	}

	user := strings.TrimSpace(c.GetHeader(UserHeader))
	for i := range req.Requests {
		req.Requests[i].UserEmail = user
	}

	results, err := h.batch.Process(c.Request.Context(), req.Requests)
	if err != nil {
		errorResponse(c, err)
		return
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	h.logger.WithFields(logrus.Fields{
		"requests": len(results),
		"failed":   failed,
	}).Info("Processed batch CMA request")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
)

// Envelope - единый формат ответа API
// @Description Единый формат ответа API
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Status: true, Message: message, Data: data})
}

// respondError отображает ошибки домена на HTTP-статусы:
// валидация -> 400, не найдено -> 404, конфликт состояния -> 409,
// все остальное -> 500 без деталей
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.WithError(err).Warn("Requested entity not found")
		c.JSON(http.StatusNotFound, Envelope{Status: false, Message: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		log.WithError(err).Warn("Request conflicts with current state")
		c.JSON(http.StatusConflict, Envelope{Status: false, Message: err.Error()})
	default:
		log.WithError(err).Error("Unhandled error in service")
		c.JSON(http.StatusInternalServerError, Envelope{Status: false, Message: "internal server error"})
	}
}

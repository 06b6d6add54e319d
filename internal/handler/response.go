package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/dentradar/dentradar-api/pkg/errors"
)

// Error renders an error in the API's error shape. AppErrors map to their
// status code with their message (plus debug detail for not-found results);
// anything else becomes a generic 500 with the detail logged server-side only.
func Error(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Debug != "" {
			body["debug"] = appErr.Debug
		}
		if appErr.Err != nil && appErr.StatusCode() < 500 {
			body["details"] = appErr.Err.Error()
		}
		if appErr.StatusCode() >= 500 {
			log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("request failed")
		}
		c.JSON(appErr.StatusCode(), body)
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unclassified request error")
	c.JSON(500, gin.H{"error": "internal server error"})
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goldhollow/trophytable/internal/services/table"
)

// syncErrorMessage is what clients see when the store is unreachable. The
// client keeps its local state and retries; the message only signals that
// nothing was shared.
const syncErrorMessage = "Error de sincronización"

// writeError maps a service error onto an HTTP response. Validation errors
// travel as-is; anything unexpected is a store problem and becomes a 502 so
// clients can tell "you did it wrong" from "the table is offline".
func (h *Handler) writeError(c *gin.Context, err error) {
	var tableErr table.TableError
	if errors.As(err, &tableErr) {
		c.JSON(statusFor(tableErr), gin.H{"error": tableErr.Error()})
		return
	}

	h.logger.Error("table operation failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadGateway, gin.H{"error": syncErrorMessage})
}

func statusFor(err table.TableError) int {
	switch err {
	case table.ErrSessionNotFound:
		return http.StatusNotFound
	case table.ErrNotYourRoll, table.ErrPushNotAllowed:
		return http.StatusForbidden
	case table.ErrNoRolls:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

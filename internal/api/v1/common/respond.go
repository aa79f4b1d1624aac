package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/utils"
	"github.com/JulierBo/New1mlbbtopup--bot/pkg/logger"
)

// OK writes the standard success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse(message, data))
}

// Error translates a service error into the envelope with the right HTTP
// status. Unknown errors are logged and masked as 500s.
func Error(c *gin.Context, err error) {
	var valErr *services.ValidationError
	var balErr *services.InsufficientBalanceError
	var maintErr *services.MaintenanceError

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, valErr.Error()))
	case errors.As(err, &balErr):
		c.JSON(http.StatusPaymentRequired, utils.NewResponse(http.StatusPaymentRequired, balErr.Error(), gin.H{
			"required":  balErr.Required,
			"available": balErr.Available,
			"shortfall": balErr.Shortfall(),
		}))
	case errors.As(err, &maintErr):
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, maintErr.Error()))
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
	case errors.Is(err, services.ErrAwaitingApproval),
		errors.Is(err, services.ErrBannedAccount):
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTopupNotFound),
		errors.Is(err, services.ErrOverrideNotFound),
		errors.Is(err, services.ErrChannelNotFound),
		errors.Is(err, services.ErrFeatureNotFound),
		errors.Is(err, services.ErrPriceUnknown):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrOrderAlreadyResolved),
		errors.Is(err, services.ErrTopupAlreadyApproved),
		errors.Is(err, services.ErrNoPendingIntent),
		errors.Is(err, services.ErrStoreConflict):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
	default:
		logger.Log.Error("unhandled service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}

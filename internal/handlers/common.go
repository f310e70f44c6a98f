// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/printcraft/store-backend/internal/i18n"
	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

// respondServiceError translates sentinel errors from the services
// layer into HTTP responses. Unknown errors become a 500 without
// leaking internals to the client.
func respondServiceError(c *gin.Context, err error, resource string) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrInvalidQuantity):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartInvalidQty), err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
	case errors.Is(err, services.ErrBelowMinimumOrder):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartBelowMinimum), err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyOrderInvalidTransition))
	case errors.Is(err, services.ErrDuplicateSlug):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCategoryExists))
	case errors.Is(err, services.ErrCategoryInUse):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCategoryInUse))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
	default:
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.InternalErrorResponse(c, "")
	}
}

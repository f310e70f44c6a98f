// internal/handlers/inquiry.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/printcraft/store-backend/internal/i18n"
	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// POST /inquiries
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	inquiry, err := h.inquiryService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "inquiry")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyInquiryReceived),
		"inquiry": inquiry,
	})
}

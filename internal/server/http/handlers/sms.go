package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/marketingapi/internal/server/http/dto"
)

const smsStatusSent = "sent"

// SmsHandler triggers outbound text messages.
type SmsHandler struct {
	facade SmsFacade
}

func NewSmsHandler(facade SmsFacade) *SmsHandler {
	return &SmsHandler{facade: facade}
}

// Send handles POST /api/sms/send.
func (h *SmsHandler) Send(c *gin.Context) {
	var req dto.SendSmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipient, err := h.facade.SendSms(c.Request.Context(), req.Recipient, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SendSmsResponse{Recipient: recipient, Status: smsStatusSent})
}

// Bulk handles POST /api/sms/bulk. Individual delivery failures are counted
// in the report rather than failing the request.
func (h *SmsHandler) Bulk(c *gin.Context) {
	var req dto.BulkSmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.facade.SendBulkSms(c.Request.Context(), req.MessageTemplate, req.RecipientTag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBulkSmsResponse(report))
}

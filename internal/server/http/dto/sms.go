package dto

import "github.com/polkiloo/marketingapi/internal/domain/model"

type SendSmsRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type SendSmsResponse struct {
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
}

// BulkSmsRequest carries a template with {name} style placeholders and a recipient tag such as "event:EDM".
type BulkSmsRequest struct {
	MessageTemplate string `json:"messageTemplate" binding:"required"`
	RecipientTag    string `json:"recipientTag" binding:"required"`
}

type BulkSmsResponse struct {
	Requested int `json:"requested"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

func NewBulkSmsResponse(r model.DispatchReport) BulkSmsResponse {
	return BulkSmsResponse{Requested: r.Requested, Sent: r.Sent, Failed: r.Failed}
}

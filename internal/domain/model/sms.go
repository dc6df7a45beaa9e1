package model

// SmsMessage is a single outbound text message.
type SmsMessage struct {
	Recipient string
	Body      string
}

// DispatchReport summarises a bulk send.
type DispatchReport struct {
	Requested int
	Sent      int
	Failed    int
}

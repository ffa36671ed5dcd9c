package models

// PurchaseRequest is the body the raffle form posts to the proxy.
// Everything here is request-scoped and never persisted.
type PurchaseRequest struct {
	Identifier string  `json:"identifier"`
	Amount     float64 `json:"amount"`
	Phone      string  `json:"phone"`
	Document   string  `json:"document,omitempty"`
	Tickets    int     `json:"tickets"`
}

// ClientData identifies the buyer towards the gateway. Document must be
// omitted entirely when absent; the gateway rejects an empty string.
type ClientData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document,omitempty"`
}

// ChargeRequest is the payload sent to the PIX gateway.
type ChargeRequest struct {
	Identifier string     `json:"identifier"`
	Amount     float64    `json:"amount"`
	Client     ClientData `json:"client"`
}

// Pix groups the payment instructions shown to the buyer: the EMV
// copy-and-paste code and the QR image as base64 PNG.
type Pix struct {
	Code   string `json:"code"`
	Base64 string `json:"base64"`
}

// PixPayment is the canonical success shape the form client consumes.
type PixPayment struct {
	Pix           Pix    `json:"pix"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// Document renders the payment as a free-form JSON document, the same
// representation pass-through gateway bodies use.
func (p PixPayment) Document() JSON {
	return JSON{
		"pix": JSON{
			"code":   p.Pix.Code,
			"base64": p.Pix.Base64,
		},
		"transactionId": p.TransactionID,
		"status":        p.Status,
	}
}

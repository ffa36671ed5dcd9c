package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rifapix/internal/models"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11999998888", DigitsOnly("(11) 99999-8888"))
	assert.Equal(t, "12345678901", DigitsOnly("123.456.789-01"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "", DigitsOnly(""))
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		req     models.PurchaseRequest
		missing []string
	}{
		{
			name:    "empty request",
			req:     models.PurchaseRequest{},
			missing: []string{"identifier", "amount", "phone", "tickets"},
		},
		{
			name: "complete request",
			req: models.PurchaseRequest{
				Identifier: "rifa_1",
				Amount:     6.98,
				Phone:      "(11) 99999-8888",
				Tickets:    2,
			},
			missing: nil,
		},
		{
			name: "no phone",
			req: models.PurchaseRequest{
				Identifier: "rifa_1",
				Amount:     3.49,
				Tickets:    1,
			},
			missing: []string{"phone"},
		},
		{
			name: "no tickets",
			req: models.PurchaseRequest{
				Identifier: "rifa_1",
				Amount:     3.49,
				Phone:      "11999998888",
			},
			missing: []string{"tickets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, MissingFields(&tt.req))
		})
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("(11) 99999-8888"))
	assert.True(t, ValidPhone("1199999888"))
	assert.False(t, ValidPhone("119999988"))
	assert.False(t, ValidPhone("telefone"))
}

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     string
	}{
		{"formatted cpf", "123.456.789-01", "12345678901"},
		{"bare cpf", "12345678901", "12345678901"},
		{"too short", "123456789", ""},
		{"too long", "123456789012", ""},
		{"empty", "", ""},
		{"letters only", "sem documento", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDocument(tt.document))
		})
	}
}

package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rifapix/internal/models"
)

func TestHasPixFields(t *testing.T) {
	tests := []struct {
		name string
		doc  models.JSON
		want bool
	}{
		{"nested pix object", models.JSON{"pix": map[string]interface{}{"code": "X"}}, true},
		{"top-level code", models.JSON{"code": "X"}, true},
		{"top-level base64", models.JSON{"base64": "Y"}, true},
		{"renamed keys only", models.JSON{"pix_code": "X", "pix_base64": "Y"}, false},
		{"empty document", models.JSON{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPixFields(tt.doc))
		})
	}
}

func TestNormalize_RenamedFlatKeys(t *testing.T) {
	doc := models.JSON{
		"pix_code":       "X",
		"pix_base64":     "Y",
		"transaction_id": "T",
	}

	got := Normalize(doc, "rifa_fallback")

	assert.Equal(t, "X", got.Pix.Code)
	assert.Equal(t, "Y", got.Pix.Base64)
	assert.Equal(t, "T", got.TransactionID)
	assert.Equal(t, "pending", got.Status)
}

func TestNormalize_AliasPriority(t *testing.T) {
	// pix_code outranks code, which outranks the nested pix.code.
	doc := models.JSON{
		"pix_code": "first",
		"code":     "second",
		"pix":      map[string]interface{}{"code": "third"},
	}
	assert.Equal(t, "first", Normalize(doc, "id").Pix.Code)

	doc = models.JSON{
		"code": "second",
		"pix":  map[string]interface{}{"code": "third"},
	}
	assert.Equal(t, "second", Normalize(doc, "id").Pix.Code)

	doc = models.JSON{
		"pix": map[string]interface{}{"code": "third", "base64": "img"},
	}
	got := Normalize(doc, "id")
	assert.Equal(t, "third", got.Pix.Code)
	assert.Equal(t, "img", got.Pix.Base64)
}

func TestNormalize_TransactionIDFallbacks(t *testing.T) {
	assert.Equal(t, "T", Normalize(models.JSON{"transaction_id": "T", "id": "I"}, "F").TransactionID)
	assert.Equal(t, "I", Normalize(models.JSON{"id": "I"}, "F").TransactionID)
	assert.Equal(t, "F", Normalize(models.JSON{}, "F").TransactionID)

	// Some gateway versions send numeric ids.
	assert.Equal(t, "12345", Normalize(models.JSON{"id": float64(12345)}, "F").TransactionID)
}

func TestNormalize_StatusPreserved(t *testing.T) {
	assert.Equal(t, "paid", Normalize(models.JSON{"status": "paid"}, "F").Status)
	assert.Equal(t, "pending", Normalize(models.JSON{}, "F").Status)
}

func TestNormalize_EmptyStringsSkipped(t *testing.T) {
	// An empty alias value falls through to the next rule.
	doc := models.JSON{
		"pix_code": "",
		"code":     "real",
	}
	assert.Equal(t, "real", Normalize(doc, "id").Pix.Code)
}

func TestNormalize_Document(t *testing.T) {
	doc := models.JSON{
		"pix_code":       "X",
		"pix_base64":     "Y",
		"transaction_id": "T",
	}

	want := models.JSON{
		"pix": models.JSON{
			"code":   "X",
			"base64": "Y",
		},
		"transactionId": "T",
		"status":        "pending",
	}
	assert.Equal(t, want, Normalize(doc, "F").Document())
}

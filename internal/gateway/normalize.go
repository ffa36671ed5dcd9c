package gateway

import (
	"strconv"

	"rifapix/internal/models"
)

// The gateway has shipped the same payment data under different key names
// across versions. Each canonical field carries an ordered list of
// extraction rules; the first rule that matches a present value wins.

type fieldRule struct {
	path []string
}

var (
	codeRules = []fieldRule{
		{path: []string{"pix_code"}},
		{path: []string{"code"}},
		{path: []string{"pix", "code"}},
	}
	base64Rules = []fieldRule{
		{path: []string{"pix_base64"}},
		{path: []string{"base64"}},
		{path: []string{"pix", "base64"}},
	}
	transactionRules = []fieldRule{
		{path: []string{"transaction_id"}},
		{path: []string{"id"}},
	}
	statusRules = []fieldRule{
		{path: []string{"status"}},
	}
)

// HasPixFields reports whether the document already exposes payment data
// in a shape the form client understands. When it does, the body is passed
// through untouched instead of being rebuilt.
func HasPixFields(doc models.JSON) bool {
	_, hasPix := doc["pix"]
	_, hasCode := doc["code"]
	_, hasBase64 := doc["base64"]
	return hasPix || hasCode || hasBase64
}

// Normalize builds the canonical payment result from a document of unknown
// vintage. fallbackID fills the transaction id when the gateway sent none,
// and a missing status defaults to pending. Pure function, no I/O.
func Normalize(doc models.JSON, fallbackID string) models.PixPayment {
	result := models.PixPayment{
		Pix: models.Pix{
			Code:   extract(doc, codeRules),
			Base64: extract(doc, base64Rules),
		},
		TransactionID: extract(doc, transactionRules),
		Status:        extract(doc, statusRules),
	}

	if result.TransactionID == "" {
		result.TransactionID = fallbackID
	}
	if result.Status == "" {
		result.Status = "pending"
	}
	return result
}

func extract(doc models.JSON, rules []fieldRule) string {
	for _, rule := range rules {
		if val, ok := lookup(doc, rule.path); ok {
			return val
		}
	}
	return ""
}

// lookup walks a key path through nested objects. Numeric values are kept
// because some gateway versions send transaction ids as numbers.
func lookup(doc models.JSON, path []string) (string, bool) {
	var current interface{} = map[string]interface{}(doc)
	for _, key := range path {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		if current, ok = node[key]; !ok {
			return "", false
		}
	}

	switch v := current.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

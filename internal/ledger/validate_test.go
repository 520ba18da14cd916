package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntryJSON(t *testing.T) {
	valid := []byte(`{
		"company_name": "Johnson Enterprises Ltd",
		"date": "12/01/2024",
		"store_name": "CORNER CAFE",
		"total": 10.50,
		"items": [
			{"name": "Flat White", "price": "$4.50", "category": "food"},
			{"name": "Muffin", "price": "6.00"}
		]
	}`)
	assert.NoError(t, ValidateEntryJSON(valid))
}

func TestValidateEntryJSONRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing total", body: `{"company_name":"A","date":"d","store_name":"S","items":[]}`},
		{name: "negative total", body: `{"company_name":"A","date":"d","store_name":"S","total":-1,"items":[]}`},
		{name: "empty store name", body: `{"company_name":"A","date":"d","store_name":"","total":1,"items":[]}`},
		{name: "bad price format", body: `{"company_name":"A","date":"d","store_name":"S","total":1,"items":[{"name":"x","price":"4.5"}]}`},
		{name: "unknown category", body: `{"company_name":"A","date":"d","store_name":"S","total":1,"items":[{"name":"x","price":"$4.50","category":"misc"}]}`},
		{name: "unknown field", body: `{"company_name":"A","date":"d","store_name":"S","total":1,"items":[],"extra":true}`},
		{name: "not json", body: `{"company_name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateEntryJSON([]byte(tt.body)))
		})
	}
}

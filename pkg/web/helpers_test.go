package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		key      string
		def      int
		expected int
	}{
		{name: "absent falls back to default", url: "/api/products", key: "page", def: 1, expected: 1},
		{name: "valid value is used", url: "/api/products?page=3", key: "page", def: 1, expected: 3},
		{name: "unparsable falls back to default", url: "/api/products?limit=abc", key: "limit", def: 5, expected: 5},
		{name: "zero falls back to default", url: "/api/products?limit=0", key: "limit", def: 5, expected: 5},
		{name: "negative is clamped to 1", url: "/api/products?page=-4", key: "page", def: 1, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			assert.Equal(t, tc.expected, ParseIntDefault(req, tc.key, tc.def))
		})
	}
}

func TestRespondError_UsesMessageKey(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondError(rr, discardLogger(), http.StatusNotFound, "Product not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Product not found"}`, rr.Body.String())
}

func TestRespondJSON_NilPayload(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondJSON(rr, discardLogger(), http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

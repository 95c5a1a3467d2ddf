package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freckles-ink/printdesk/internal/handler"
)

func postQuote(t *testing.T, kind, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.NewPricingHandler(testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/quote/"+kind, strings.NewReader(body))
	req.SetPathValue("kind", kind)
	rec := httptest.NewRecorder()
	h.Quote(rec, req)
	return rec
}

func TestQuote_Screenprint(t *testing.T) {
	rec := postQuote(t, "screenprint", `{
		"shirts":24,
		"dozenCost":"2",
		"location1Colors":2,
		"artFilmCharges":"10",
		"royaltyPercent":"10"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var quote map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, "102.40", quote["totalCharges"])
	assert.Equal(t, "192.80", quote["total"])
}

func TestQuote_Embroidery(t *testing.T) {
	rec := postQuote(t, "embroidery", `{
		"garmentCost":"21.99",
		"hourlyRate":"75",
		"artHours":"0.1964",
		"stitches":[8000,10000,1165]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":"59.72"`)
}

func TestQuote_StickersInvalidDimensions(t *testing.T) {
	rec := postQuote(t, "stickers", `{"height":"3","width":"26","quantity":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid")
}

func TestQuote_PatchesUnknownMaterial(t *testing.T) {
	rec := postQuote(t, "patches", `{"quantity":1,"patchType":"velvet"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown material or preset")
}

func TestQuote_Store(t *testing.T) {
	rec := postQuote(t, "store", `{
		"basePrice":"16.82",
		"royalties":["0.08","0","0","0","0"],
		"markup":"0.074074"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storePrice":"19.4115"`)
	assert.Contains(t, rec.Body.String(), `"extraAmount":"1.0386"`)
}

func TestQuote_UnknownKind(t *testing.T) {
	rec := postQuote(t, "engraving", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuote_MalformedBody(t *testing.T) {
	rec := postQuote(t, "magnets", `{"quantity":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/handler"
	"github.com/rosae/theatre-ops/internal/settlement"
)

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRebalanceEndpointRecomputesComplement(t *testing.T) {
	h := handler.NewBookingHandler(nil, nil, nil, nil)

	rec := postJSON(t, h.Rebalance, `{
		"theatreName": "Screen 1",
		"timeSlot": "2:00 PM - 4:00 PM",
		"bookingDate": "2026-08-30",
		"guests": 4,
		"totalAmount": 1200,
		"cashAmount": 700,
		"upiAmount": 0,
		"changedField": "cashAmount"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out settlement.Input
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 700.0, out.CashAmount)
	assert.Equal(t, 500.0, out.UpiAmount)
}

func TestRebalanceEndpointUnknownField(t *testing.T) {
	h := handler.NewBookingHandler(nil, nil, nil, nil)

	rec := postJSON(t, h.Rebalance, `{
		"guests": 2,
		"totalAmount": 100,
		"changedField": "totalAmount"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRebalanceEndpointSurfacesSettlementMessage(t *testing.T) {
	h := handler.NewBookingHandler(nil, nil, nil, nil)

	// Snack split cannot reconcile after rebalancing the primary split.
	rec := postJSON(t, h.Rebalance, `{
		"theatreName": "Screen 1",
		"timeSlot": "2:00 PM - 4:00 PM",
		"bookingDate": "2026-08-30",
		"guests": 4,
		"totalAmount": 1200,
		"cashAmount": 600,
		"snacksAmount": 300,
		"snacksCash": 100,
		"snacksUpi": 100,
		"changedField": "cashAmount"
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string           `json:"error"`
		Details settlement.Error `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, settlement.MsgSnacksMismatch, body.Error)
	assert.Equal(t, settlement.KindSnackSettlementMismatch, body.Details.Kind)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

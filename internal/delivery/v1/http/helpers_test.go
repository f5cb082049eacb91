package http

import (
	"net/http"
	"testing"

	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "599.99", want: 59999},
		{in: "600", want: 60000},
		{in: "0", want: 0},
		{in: "0.01", want: 1},
		{in: "12.5", want: 1250},
		{in: "-5", wantErr: e.ErrInvalidPrice},
		{in: "12.999", wantErr: e.ErrPricePrecision},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "2000000000", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceToCents_Empty(t *testing.T) {
	_, err := parsePriceToCents("   ")
	assert.Error(t, err)
}

func TestCentsToPrice(t *testing.T) {
	assert.Equal(t, "5.99", centsToPrice(599))
	assert.Equal(t, "600.00", centsToPrice(60000))
	assert.Equal(t, "0.00", centsToPrice(0))
	assert.Equal(t, "0.01", centsToPrice(1))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request", err: e.ErrInvalidPrice, code: http.StatusBadRequest},
		{name: "insufficient stock", err: e.ErrInsufficientStock, code: http.StatusBadRequest},
		{name: "product not found", err: e.ErrProductNotFound, code: http.StatusNotFound},
		{name: "order not found", err: e.ErrOrderNotFound, code: http.StatusNotFound},
		{name: "category exists", err: e.ErrCategoryExists, code: http.StatusConflict},
		{name: "category in use", err: e.ErrCategoryInUse, code: http.StatusConflict},
		{name: "gateway down", err: e.ErrPaymentGatewayUnavailable, code: http.StatusBadGateway},
		{name: "wrapped error keeps mapping", err: e.Wrap("op", e.ErrProductNotFound), code: http.StatusNotFound},
		{name: "unknown error is 500", err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestToHTTPResponse_NeverLeaksInternals(t *testing.T) {
	_, msg := ToHTTPResponse(e.Wrap("pq: relation \"products\" does not exist", assert.AnError))
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{fmt.Errorf("%w: %q", domain.ErrInvalidCeiling, "Z9"), http.StatusBadRequest, ErrMsgInvalidCeilingError},
		{domain.ErrInvalidWeekday, http.StatusBadRequest, ErrMsgInvalidWeekdayError},
		{domain.ErrInvalidUnitType, http.StatusBadRequest, ErrMsgInvalidUnitError},
		{domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantityErr},
		{domain.ErrInvalidProfile, http.StatusBadRequest, ErrMsgInvalidProfileError},
		{domain.ErrCashableNotFound, http.StatusNotFound, ErrMsgCashableNotFoundErr},
		{fmt.Errorf("%w: pq: relation missing", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.Equal(t, tt.wantMsg, msg, "%v", tt.err)
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]float64{"ratio": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

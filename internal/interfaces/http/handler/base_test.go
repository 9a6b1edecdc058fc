package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/dto"
)

func TestBaseHandlerHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found sentinel", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"invalid input sentinel", shared.ErrInvalidInput, http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{"constructed domain error", shared.NewDomainError("NOT_FOUND", "Não há transações no período informado."), http.StatusNotFound, dto.ErrCodeNotFound},
		{"wrapped domain error", fmt.Errorf("loading transaction: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{"external service error", shared.ErrExternalService, http.StatusBadGateway, dto.ErrCodeExternalService},
		{"opaque error", assert.AnError, http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			h := &BaseHandler{}
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestDeleteLink(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		code           string
		usecaseError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "existing link",
			target:         "/api/shorten?code=aB3xZ9",
			code:           "aB3xZ9",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "missing code",
			target:         "/api/shorten",
			code:           "",
			usecaseError:   usecase.ErrEmptyCode,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Code is required"}`,
		},
		{
			name:           "store failure",
			target:         "/api/shorten?code=aB3xZ9",
			code:           "aB3xZ9",
			usecaseError:   usecase.ErrServiceUnavailable,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				DeleteLink(mock.Anything, tt.code).
				Return(tt.usecaseError).
				Once()

			h := New(mockUsecase, zap.NewNop())
			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			w := httptest.NewRecorder()

			// Act
			h.DeleteLink(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

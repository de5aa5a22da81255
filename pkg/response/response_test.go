package response_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/storefront-pager/internal/repository"
	"github.com/maxviazov/storefront-pager/internal/service"
	"github.com/maxviazov/storefront-pager/pkg/response"
)

func TestMapError(t *testing.T) {
	invalid := service.NewInvalidInputError([]service.FieldError{{Field: "page", Message: "bad"}})
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"nil", nil, 200, "ok"},
		{"invalid_input", invalid, 400, "invalid_input"},
		{"not_found", repository.ErrNotFound, 404, "not_found"},
		{"wrapped not_found", fmt.Errorf("get product: %w", repository.ErrNotFound), 404, "not_found"},
		{"already_exists", repository.ErrAlreadyExists, 409, "already_exists"},
		{"conflict", repository.ErrConflict, 409, "conflict"},
		{"timeout", context.DeadlineExceeded, 504, "timeout"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(response.RequestIDKey, "req-123")

	response.WriteError(c, repository.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":"not_found","request_id":"req-123"}`, w.Body.String())
}

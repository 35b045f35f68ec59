package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/bad", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
		_ = c.Error(errors.New("unknown technique"))
	})
	router.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("redis timeout"))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/bad", http.StatusBadRequest, `{"error":"unknown technique"}`},
		{"/broken", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
		{"/panic", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	router := newErrorRouter()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

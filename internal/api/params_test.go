package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		path    string
		want    uint
		wantErr bool
	}{
		{"valid id", "/funds/42", 42, false},
		{"zero", "/funds/0", 0, true},
		{"negative", "/funds/-1", 0, true},
		{"not a number", "/funds/abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got uint
				err error
			)
			r := gin.New()
			r.GET("/funds/:id", func(c *gin.Context) {
				got, err = PathID(c, "id")
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		want := uuid.New()
		c.Params = gin.Params{{Key: "id", Value: want.String()}}

		id, ok := ParseIDParam(c, "id")
		if !ok {
			t.Fatal("expected ok for a valid uuid")
		}
		if id != want {
			t.Errorf("id = %s, want %s", id, want)
		}
		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Errorf("response written for a valid uuid: %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("malformed uuid writes 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := ParseIDParam(c, "id")
		if ok {
			t.Fatal("expected not ok for a malformed uuid")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if w.Body.Len() == 0 {
			t.Error("expected an error body, got an empty response")
		}
	})
}

package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rizkypratama/user-crud-api/pkg/validation"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestServerErrorBodyIsFlat(t *testing.T) {
	c, w := testContext()
	ServerError(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"server error"}`, w.Body.String())
}

func TestValidationFailedUses404(t *testing.T) {
	c, w := testContext()
	ValidationFailed(c, []validation.FieldError{
		{Field: "name", Message: "Name is required"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"name","message":"Name is required"}]}`, w.Body.String())
}

func TestInvalidPayload(t *testing.T) {
	c, w := testContext()
	InvalidPayload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid json payload"}`, w.Body.String())
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/user-crud-api/pkg/validation"
)

// ServerError writes the flat 500 body used for every unhandled failure.
// The underlying cause is logged server-side and never leaks to the client.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}

// ValidationFailed writes the collected rule failures. Status 404 mirrors the
// original service; see DESIGN.md before "fixing" it to 400.
func ValidationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusNotFound, gin.H{"errors": errs})
}

// InvalidPayload is returned when the request body is not parseable JSON.
func InvalidPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json payload"})
}

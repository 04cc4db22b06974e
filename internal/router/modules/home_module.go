package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const homePage = `<!doctype html>
<html>
<head><title>user-crud-api</title></head>
<body><h1>home page</h1></body>
</html>`

// HomeModule serves the static placeholder page at the root path.
type HomeModule struct{}

func NewHomeModule() *HomeModule { return &HomeModule{} }

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
	})
}

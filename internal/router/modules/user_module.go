package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rizkypratama/user-crud-api/internal/interface/http"
)

// UserModule wires the user CRUD handlers into routes:
// POST /create, GET /get-all, GET /get-one/:id, GET /get-one-query,
// PUT /update/:id, DELETE /delete/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/create", m.Handler.Create)
	rg.GET("/get-all", m.Handler.GetAll)
	rg.GET("/get-one/:id", m.Handler.GetOne)
	rg.GET("/get-one-query", m.Handler.GetOneQuery)
	rg.PUT("/update/:id", m.Handler.Update)
	rg.DELETE("/delete/:id", m.Handler.Delete)
}

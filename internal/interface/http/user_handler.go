package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/rizkypratama/user-crud-api/internal/application"
	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
	"github.com/rizkypratama/user-crud-api/pkg/helpers"
	"github.com/rizkypratama/user-crud-api/pkg/response"
	"github.com/rizkypratama/user-crud-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Rules  *validation.Validator
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, rules *validation.Validator, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Rules: rules, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// updateUserRequest uses pointers so that omitted fields are distinguishable
// from empty ones and keep their stored values.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
}

type userEnvelope struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

type usersEnvelope struct {
	Message string        `json:"message"`
	Users   []entity.User `json:"users"`
}

// serverError logs the real cause and answers with the flat 500 body.
func (h *UserHandler) serverError(c *gin.Context, msg string, err error) {
	helpers.LogError(h.Logger, msg, err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"route":      c.FullPath(),
		"ip":         c.GetString("real_ip"),
	})
	response.ServerError(c)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c)
		return
	}

	errs := validation.Collect(
		h.Rules.Name(req.Name),
		h.Rules.Email(req.Email),
		h.Rules.Password(req.Password),
		h.Rules.Phone(req.Phone),
	)
	if len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), userapp.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.serverError(c, "create user failed", err)
		return
	}
	c.JSON(http.StatusOK, userEnvelope{Message: "user created successfully", User: u})
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, usersEnvelope{Message: "get all users", Users: users})
}

func (h *UserHandler) GetOne(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "find user failed", err)
		return
	}
	c.JSON(http.StatusOK, userEnvelope{Message: "user find successfully", User: u})
}

func (h *UserHandler) GetOneQuery(c *gin.Context) {
	id := c.Query("id")
	if errs := h.Rules.IDQuery(id); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "find user failed", err)
		return
	}
	c.JSON(http.StatusOK, userEnvelope{Message: "user find successfully", User: u})
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c)
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), id, userapp.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.serverError(c, "update user failed", err)
		return
	}
	c.JSON(http.StatusOK, userEnvelope{Message: "user update successfully", User: u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "delete user failed", err)
		return
	}
	c.JSON(http.StatusOK, userEnvelope{Message: "user delete successfully", User: u})
}

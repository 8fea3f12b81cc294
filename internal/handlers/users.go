package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rvishnuram/orgdir/internal/services"
	appErrors "github.com/rvishnuram/orgdir/pkg/errors"
	"github.com/rvishnuram/orgdir/pkg/metrics"
	"github.com/rvishnuram/orgdir/pkg/response"
)

// UserHandler serves the member side of the directory API.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(db *gorm.DB) (*UserHandler, error) {
	svc, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	return &UserHandler{svc: svc}, nil
}

type createUserRequest struct {
	OrgID    *uint  `json:"org_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, users)
}

// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var body createUserRequest
	if !bindAndValidate(c, &body) {
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		response.Error(c, appErrors.NewBadRequest("name is required"))
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		response.Error(c, appErrors.NewBadRequest("email is required"))
		return
	}
	if strings.TrimSpace(body.Role) == "" {
		response.Error(c, appErrors.NewBadRequest("role is required"))
		return
	}
	if *body.OrgID == 0 {
		response.Error(c, appErrors.NewBadRequest("org_id is required"))
		return
	}

	user, err := h.svc.Create(requestContext(c), services.CreateUserInput{
		OrgID:    *body.OrgID,
		Name:     body.Name,
		Email:    body.Email,
		Role:     body.Role,
		Phone:    body.Phone,
		Timezone: body.Timezone,
	})
	if err != nil {
		if errors.Is(err, services.ErrOrganizationMissing) {
			metrics.DirectoryWrites.WithLabelValues("user", "error").Inc()
			response.Error(c, appErrors.NewBadRequest("Organization does not exist"))
			return
		}
		metrics.DirectoryWrites.WithLabelValues("user", "error").Inc()
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	metrics.DirectoryWrites.WithLabelValues("user", "success").Inc()
	response.Success(c, http.StatusCreated, user)
}

// GET /api/users/search?q=
func (h *UserHandler) Search(c *gin.Context) {
	metrics.SearchQueries.WithLabelValues("user").Inc()

	users, err := h.svc.Search(requestContext(c), c.Query("q"))
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, users)
}

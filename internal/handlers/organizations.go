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

// OrganizationHandler serves the tenant side of the directory API.
type OrganizationHandler struct {
	svc *services.OrganizationService
}

func NewOrganizationHandler(db *gorm.DB) (*OrganizationHandler, error) {
	svc, err := services.NewOrganizationService(db)
	if err != nil {
		return nil, err
	}
	return &OrganizationHandler{svc: svc}, nil
}

type createOrganizationRequest struct {
	Name            string `json:"name" validate:"required"`
	Slug            string `json:"slug" validate:"required"`
	SupportEmail    string `json:"support_email"`
	Phone           string `json:"phone"`
	AltPhone        string `json:"alt_phone"`
	Website         string `json:"website"`
	MaxCoordinators int    `json:"max_coordinators"`
	Timezone        string `json:"timezone"`
	Language        string `json:"language"`
	Status          string `json:"status"`
	PendingRequests int    `json:"pending_requests"`
}

type updateOrganizationStatusRequest struct {
	Status *string `json:"status" validate:"required"`
}

// GET /api/organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, orgs)
}

// GET /api/organizations/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, appErrors.NewNotFound("Organization not found"))
		return
	}

	org, err := h.svc.GetByID(requestContext(c), id)
	if err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			response.Error(c, appErrors.NewNotFound("Organization not found"))
			return
		}
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, org)
}

// POST /api/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var body createOrganizationRequest
	if !bindAndValidate(c, &body) {
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		response.Error(c, appErrors.NewBadRequest("name is required"))
		return
	}
	if strings.TrimSpace(body.Slug) == "" {
		response.Error(c, appErrors.NewBadRequest("slug is required"))
		return
	}

	org, err := h.svc.Create(requestContext(c), services.CreateOrganizationInput{
		Name:            name,
		Slug:            body.Slug,
		SupportEmail:    body.SupportEmail,
		Phone:           body.Phone,
		AltPhone:        body.AltPhone,
		Website:         body.Website,
		MaxCoordinators: body.MaxCoordinators,
		Timezone:        body.Timezone,
		Language:        body.Language,
		Status:          body.Status,
		PendingRequests: body.PendingRequests,
	})
	if err != nil {
		if errors.Is(err, services.ErrOrganizationConflict) {
			metrics.DirectoryWrites.WithLabelValues("organization", "conflict").Inc()
			response.Error(c, appErrors.ErrConflict.WithInternal(err))
			return
		}
		metrics.DirectoryWrites.WithLabelValues("organization", "error").Inc()
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	metrics.DirectoryWrites.WithLabelValues("organization", "success").Inc()
	response.Success(c, http.StatusCreated, org)
}

// PUT /api/organizations/:id/status
func (h *OrganizationHandler) UpdateStatus(c *gin.Context) {
	var body updateOrganizationStatusRequest
	if !bindAndValidate(c, &body) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, appErrors.NewNotFound("Organization not found"))
		return
	}

	org, err := h.svc.UpdateStatus(requestContext(c), id, *body.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			response.Error(c, appErrors.NewNotFound("Organization not found"))
			return
		}
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, org)
}

// GET /api/organizations/search?q=
func (h *OrganizationHandler) Search(c *gin.Context) {
	metrics.SearchQueries.WithLabelValues("organization").Inc()

	orgs, err := h.svc.Search(requestContext(c), c.Query("q"))
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	response.Success(c, http.StatusOK, orgs)
}

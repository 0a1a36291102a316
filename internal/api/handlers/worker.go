package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"workjunction-backend/internal/auth"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkerHandler handles HTTP requests for worker profiles, offered services,
// verification documents and the agent review flow
type WorkerHandler struct {
	workerService service.WorkerServiceInterface
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService service.WorkerServiceInterface) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// ListWorkers handles GET /api/v1/workers
// @Summary List verified workers
// @Description Get verified workers, optionally filtered by city and service category
// @Tags workers
// @Accept json
// @Produce json
// @Param city query string false "Filter by city"
// @Param category query string false "Filter by service category"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkerListResponse "Successfully retrieved workers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.workerService.List(service.WorkerFilterRequest{
		City:     c.Query("city"),
		Category: c.Query("category"),
	}, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorker handles GET /api/v1/workers/:id
// @Summary Get worker by ID
// @Description Get a worker profile with its offered services
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Success 200 {object} service.WorkerResponse "Successfully retrieved worker"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Router /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	worker, err := h.workerService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get worker", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// GetMyProfile handles GET /api/v1/workers/me
// @Summary Get own worker profile
// @Description Get the worker profile of the authenticated worker
// @Tags workers
// @Accept json
// @Produce json
// @Success 200 {object} service.WorkerResponse "Worker profile"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me [get]
func (h *WorkerHandler) GetMyProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	worker, err := h.workerService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get worker", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// UpdateMyProfile handles PUT /api/v1/workers/me
// @Summary Update own worker profile
// @Description Update bio, hourly rate or city on the authenticated worker's profile
// @Tags workers
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} service.WorkerResponse "Updated worker profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me [put]
func (h *WorkerHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	worker, err := h.workerService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// AddService handles POST /api/v1/workers/me/services
// @Summary Add an offered service
// @Description Add a service offering to the authenticated worker's profile
// @Tags workers
// @Accept json
// @Produce json
// @Param request body service.CreateServiceRequest true "Service data"
// @Success 201 {object} service.ServiceResponse "Successfully created service"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/services [post]
func (h *WorkerHandler) AddService(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req service.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	svc, err := h.workerService.AddService(userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add service", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /api/v1/workers/me/services/:serviceId
// @Summary Update an offered service
// @Description Update a service offering owned by the authenticated worker
// @Tags workers
// @Accept json
// @Produce json
// @Param serviceId path string true "Service ID (UUID)"
// @Param request body service.UpdateServiceRequest true "Service changes"
// @Success 200 {object} service.ServiceResponse "Updated service"
// @Failure 403 {object} map[string]interface{} "Service owned by another worker"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Security BearerAuth
// @Router /workers/me/services/{serviceId} [put]
func (h *WorkerHandler) UpdateService(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID: invalid UUID format"})
		return
	}

	var req service.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	svc, err := h.workerService.UpdateService(userID, serviceID, &req)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// RemoveService handles DELETE /api/v1/workers/me/services/:serviceId
// @Summary Remove an offered service
// @Description Delete a service offering owned by the authenticated worker
// @Tags workers
// @Accept json
// @Produce json
// @Param serviceId path string true "Service ID (UUID)"
// @Success 204 "Service deleted"
// @Failure 403 {object} map[string]interface{} "Service owned by another worker"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Security BearerAuth
// @Router /workers/me/services/{serviceId} [delete]
func (h *WorkerHandler) RemoveService(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID: invalid UUID format"})
		return
	}

	if err := h.workerService.RemoveService(userID, serviceID); err != nil {
		h.respondServiceError(c, err, "Failed to remove service")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListServices handles GET /api/v1/workers/:id/services
// @Summary List a worker's services
// @Description Get the service offerings of a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Success 200 {array} service.ServiceResponse "Worker services"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Router /workers/{id}/services [get]
func (h *WorkerHandler) ListServices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	services, err := h.workerService.ListServices(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services)
}

// SubmitDocument handles POST /api/v1/workers/me/documents
// @Summary Submit a verification document
// @Description Submit a verification document and move the profile into review
// @Tags verification
// @Accept json
// @Produce json
// @Param request body service.SubmitDocumentRequest true "Document data"
// @Success 201 {object} service.DocumentResponse "Submitted document"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/documents [post]
func (h *WorkerHandler) SubmitDocument(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req service.SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doc, err := h.workerService.SubmitDocument(userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListMyDocuments handles GET /api/v1/workers/me/documents
// @Summary List own verification documents
// @Description Get the verification documents submitted by the authenticated worker
// @Tags verification
// @Accept json
// @Produce json
// @Success 200 {array} service.DocumentResponse "Submitted documents"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/documents [get]
func (h *WorkerHandler) ListMyDocuments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	worker, err := h.workerService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get worker", "details": err.Error()})
		return
	}

	docs, err := h.workerService.ListDocuments(worker.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ListWorkerDocuments handles GET /api/v1/agent/workers/:id/documents
// @Summary List a worker's verification documents
// @Description Get the verification documents of a worker under review, for verifying agents
// @Tags verification
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Success 200 {array} service.DocumentResponse "Submitted documents"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /agent/workers/{id}/documents [get]
func (h *WorkerHandler) ListWorkerDocuments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	docs, err := h.workerService.ListDocuments(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ListInReview handles GET /api/v1/agent/workers
// @Summary List workers awaiting review
// @Description Get worker profiles in the review queue, for verifying agents
// @Tags verification
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkerListResponse "Workers in review"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agent/workers [get]
func (h *WorkerHandler) ListInReview(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.workerService.ListInReview(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers in review", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReviewWorker handles POST /api/v1/agent/workers/:id/review
// @Summary Review a worker
// @Description Apply a verification decision to a worker profile
// @Tags verification
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Param request body service.ReviewWorkerRequest true "Review decision"
// @Success 200 {object} service.WorkerResponse "Reviewed worker"
// @Failure 400 {object} map[string]interface{} "Invalid decision"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /agent/workers/{id}/review [post]
func (h *WorkerHandler) ReviewWorker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	var req service.ReviewWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	worker, err := h.workerService.Review(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review worker", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrWorkerNotFound), errors.Is(err, apperrors.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

package handlers

import (
	"net/http"

	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application with status applied and approval pending. A candidate applies at most once per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.ApplyRequest true  "Candidate and job"
// @Success      201 {object}  dto.ApplicationResponse "Application submitted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Applicant is not a candidate"
// @Failure      404 {object}  map[string]string "Candidate or job not found"
// @Failure      409 {object}  map[string]string "Already applied, or job expired"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, MapApplicationModelToResponse(app))
}

// GetApplicationByID godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := pathID(c, "application")
	if !ok {
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), &dto.GetApplicationByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "Failed to retrieve application")
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationResponse "Applications, newest first"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "job")
	if !ok {
		return
	}

	apps, err := h.service.ListForJob(c.Request.Context(), &dto.ListApplicationsByJobRequest{JobID: jobID})
	if err != nil {
		respondError(c, err, "Failed to retrieve job applications")
		return
	}
	c.JSON(http.StatusOK, mapApplications(apps))
}

// ListRecruiterApplications godoc
// @Summary      List applications on a recruiter's jobs
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Recruiter ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationResponse "Applications, newest first"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Recruiter Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /recruiters/{id}/applications [get]
func (h *ApplicationHandler) ListRecruiterApplications(c *gin.Context) {
	recruiterID, ok := pathID(c, "recruiter")
	if !ok {
		return
	}

	apps, err := h.service.ListForRecruiter(c.Request.Context(), &dto.ListApplicationsByRecruiterRequest{RecruiterID: recruiterID})
	if err != nil {
		respondError(c, err, "Failed to retrieve recruiter applications")
		return
	}
	c.JSON(http.StatusOK, mapApplications(apps))
}

// ListCandidateApplications godoc
// @Summary      List a candidate's applications
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Candidate ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationResponse "Applications, newest first"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Candidate Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /candidates/{id}/applications [get]
func (h *ApplicationHandler) ListCandidateApplications(c *gin.Context) {
	candidateID, ok := pathID(c, "candidate")
	if !ok {
		return
	}

	apps, err := h.service.ListForCandidate(c.Request.Context(), &dto.ListApplicationsByCandidateRequest{CandidateID: candidateID})
	if err != nil {
		respondError(c, err, "Failed to retrieve candidate applications")
		return
	}
	c.JSON(http.StatusOK, mapApplications(apps))
}

// SetStatus godoc
// @Summary      Change application status
// @Description  Any of applied, shortlisted or rejected, from any current status. Only the job's recruiter may do it.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string               true  "Application ID" Format(uuid)
// @Param        status body      dto.SetStatusRequest true  "Recruiter and new status"
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Not the job's recruiter"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "application")
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if !validate(c, h.validator, &req) {
		return
	}

	h.setStatus(c, &req)
}

// Shortlist godoc
// @Summary      Shortlist an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true  "Application ID" Format(uuid)
// @Param        action body      dto.RecruiterActionRequest true  "Recruiter"
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Not the job's recruiter"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Router       /applications/{id}/shortlist [post]
func (h *ApplicationHandler) Shortlist(c *gin.Context) {
	h.recruiterAction(c, models.ApplicationStatusShortlisted)
}

// Reject godoc
// @Summary      Reject an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true  "Application ID" Format(uuid)
// @Param        action body      dto.RecruiterActionRequest true  "Recruiter"
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Not the job's recruiter"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Router       /applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.recruiterAction(c, models.ApplicationStatusRejected)
}

func (h *ApplicationHandler) recruiterAction(c *gin.Context, status models.ApplicationStatus) {
	id, ok := pathID(c, "application")
	if !ok {
		return
	}
	var body dto.RecruiterActionRequest
	if !bindJSON(c, h.validator, &body) {
		return
	}

	h.setStatus(c, &dto.SetStatusRequest{ID: id, RecruiterID: body.RecruiterID, Status: status})
}

func (h *ApplicationHandler) setStatus(c *gin.Context, req *dto.SetStatusRequest) {
	app, err := h.service.SetStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to update application status")
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// SetApproval godoc
// @Summary      Approve or block messaging
// @Description  Sets the approval of a shortlisted application. The job's recruiter or an admin may do it.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Application ID" Format(uuid)
// @Param        approval body      dto.SetApprovalRequest true  "Actor and decision"
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Not the job's recruiter or an admin"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Application is not shortlisted"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/approval [post]
func (h *ApplicationHandler) SetApproval(c *gin.Context) {
	id, ok := pathID(c, "application")
	if !ok {
		return
	}
	var req dto.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if !validate(c, h.validator, &req) {
		return
	}

	app, err := h.service.SetApproval(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update approval")
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

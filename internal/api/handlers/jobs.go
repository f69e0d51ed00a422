package handlers

import (
	"net/http"

	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Adds a job owned by the given recruiter. end_date is a YYYY-MM-DD date; the job is listed until the end of that day.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Poster is not a recruiter"
// @Failure      404 {object}  map[string]string "Recruiter not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	createdJob, err := h.service.Post(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, MapJobModelToJobResponse(createdJob))
}

// ListActiveJobs godoc
// @Summary      List active jobs
// @Description  Jobs whose end date is today or later, newest first. Keyword matches title, description, role and skills.
// @Tags         jobs
// @Produce      json
// @Param        keyword        query string false "Keyword filter (case-insensitive)"
// @Param        location       query string false "Location filter (case-insensitive substring)"
// @Param        max_experience query int    false "Only jobs asking for at most this many years"
// @Param        limit          query int    false "Pagination limit, 0 for all" default(0)
// @Param        offset         query int    false "Pagination offset" default(0)
// @Success      200 {array}   dto.JobResponse "Active jobs"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListActiveJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if !validate(c, h.validator, &req) {
		return
	}

	jobs, err := h.service.ListActive(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve jobs")
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, jobResponses)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves a job, including expired ones.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := pathID(c, "job")
	if !ok {
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		respondError(c, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Removes the job with its applications and interviews. Allowed for the owning recruiter and admins.
// @Tags         jobs
// @Produce      json
// @Param        id       path  string true "Job ID" Format(uuid)
// @Param        actor_id query string true "ID of the user deleting the job" Format(uuid)
// @Success      204 "Job deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      403 {object}  map[string]string "Not the owner or an admin"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := pathID(c, "job")
	if !ok {
		return
	}
	actorID, ok := requiredQueryID(c, "actor_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteJobRequest{ID: jobID, ActorID: actorID}); err != nil {
		respondError(c, err, "Failed to delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRecruiterJobs godoc
// @Summary      List a recruiter's jobs
// @Description  Every job the recruiter posted, expired ones included, newest first.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Recruiter ID" Format(uuid)
// @Success      200 {array}   dto.JobResponse "Recruiter's jobs"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Recruiter Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /recruiters/{id}/jobs [get]
func (h *JobHandler) ListRecruiterJobs(c *gin.Context) {
	recruiterID, ok := pathID(c, "recruiter")
	if !ok {
		return
	}

	jobs, err := h.service.ListByRecruiter(c.Request.Context(), &dto.ListJobsByRecruiterRequest{RecruiterID: recruiterID})
	if err != nil {
		respondError(c, err, "Failed to retrieve recruiter jobs")
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, jobResponses)
}

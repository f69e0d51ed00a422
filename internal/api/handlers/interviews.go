package handlers

import (
	"net/http"

	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InterviewHandler holds dependencies for interview operations.
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validate}
}

// ScheduleInterview godoc
// @Summary      Schedule an interview
// @Description  Records an interview with status scheduled. Overlapping slots are not checked.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview body      dto.ScheduleInterviewRequest true  "Candidate, job and RFC 3339 date_time"
// @Success      201 {object}  dto.InterviewResponse "Interview scheduled"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Candidate or job not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /interviews [post]
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	iv, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to schedule interview")
		return
	}
	c.JSON(http.StatusCreated, MapInterviewModelToResponse(iv))
}

// ListInterviews godoc
// @Summary      List interviews
// @Description  A candidate sees their own, a recruiter those on their jobs, an admin all of them. Ordered by date_time.
// @Tags         interviews
// @Produce      json
// @Param        user_id query string true "User ID" Format(uuid)
// @Param        role    query string true "Role the user acts in" Enums(candidate, recruiter, admin)
// @Success      200 {array}   dto.InterviewResponse "Interviews"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      403 {object}  map[string]string "User does not have that role"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /interviews [get]
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, ok := requiredQueryID(c, "user_id")
	if !ok {
		return
	}
	req := dto.ListInterviewsRequest{UserID: userID, Role: models.Role(c.Query("role"))}
	if !validate(c, h.validator, &req) {
		return
	}

	ivs, err := h.service.ListForUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve interviews")
		return
	}

	resp := make([]dto.InterviewResponse, 0, len(ivs))
	for i := range ivs {
		resp = append(resp, MapInterviewModelToResponse(&ivs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

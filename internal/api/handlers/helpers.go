package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"naukri-api/internal/models"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "lte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format", fieldName)
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
	}
	return errorsMap
}

// validate runs the struct validator and writes the 400 response when it fails.
func validate(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := v.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// bindJSON decodes the body into req and validates it.
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return validate(c, v, req)
}

// pathID parses the ":id" path parameter.
func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s ID format", what)})
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional UUID query parameter. A missing parameter yields nil.
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s format", name)})
		return nil, false
	}
	return &id, true
}

// requiredQueryID parses a mandatory UUID query parameter.
func requiredQueryID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, ok := queryID(c, name)
	if !ok {
		return uuid.Nil, false
	}
	if id == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Query parameter '%s' is required", name)})
		return uuid.Nil, false
	}
	return *id, true
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Education: user.Education,
		Skills:    user.Skills,
		Company:   user.Company,
		Age:       user.Age,
		Phone:     user.Phone,
		CreatedAt: dto.FormatTime(user.CreatedAt),
		UpdatedAt: dto.FormatTime(user.UpdatedAt),
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Role:        job.Role,
		Location:    job.Location,
		Skills:      job.Skills,
		Experience:  job.Experience,
		Salary:      job.Salary,
		EndDate:     job.EndDate.Format(dto.DateLayout),
		RecruiterID: job.RecruiterID,
		PostedAt:    dto.FormatTime(job.PostedAt),
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		CandidateID: app.CandidateID,
		JobID:       app.JobID,
		JobTitle:    app.JobTitle,
		Status:      app.Status,
		Approval:    app.Approval,
		AppliedAt:   dto.FormatTime(app.AppliedAt),
		UpdatedAt:   dto.FormatTime(app.UpdatedAt),
	}
}

func MapMessageModelToResponse(msg *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        msg.ID,
		FromID:    msg.FromID,
		ToID:      msg.ToID,
		Text:      msg.Text,
		Timestamp: dto.FormatTime(msg.Timestamp),
	}
}

func MapInterviewModelToResponse(iv *models.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:          iv.ID,
		CandidateID: iv.CandidateID,
		JobID:       iv.JobID,
		DateTime:    dto.FormatTime(iv.DateTime),
		Status:      iv.Status,
		CreatedAt:   dto.FormatTime(iv.CreatedAt),
	}
}

func mapApplications(apps []models.Application) []dto.ApplicationResponse {
	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, MapApplicationModelToResponse(&apps[i]))
	}
	return resp
}

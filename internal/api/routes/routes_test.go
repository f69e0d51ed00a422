package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"naukri-api/internal/api/handlers"
	"naukri-api/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockHandler implements every handler interface and records which method served a request.
type mockHandler struct {
	mock.Mock
}

// serve records the call under the handler's own name so expectations read as method names.
func (m *mockHandler) serve(name string, c *gin.Context) {
	m.MethodCalled(name)
	c.Status(http.StatusOK)
}

func (m *mockHandler) Register(c *gin.Context)                  { m.serve("Register", c) }
func (m *mockHandler) Login(c *gin.Context)                     { m.serve("Login", c) }
func (m *mockHandler) GetUserByID(c *gin.Context)               { m.serve("GetUserByID", c) }
func (m *mockHandler) UpdateProfile(c *gin.Context)             { m.serve("UpdateProfile", c) }
func (m *mockHandler) CreateJob(c *gin.Context)                 { m.serve("CreateJob", c) }
func (m *mockHandler) ListActiveJobs(c *gin.Context)            { m.serve("ListActiveJobs", c) }
func (m *mockHandler) GetJobByID(c *gin.Context)                { m.serve("GetJobByID", c) }
func (m *mockHandler) DeleteJob(c *gin.Context)                 { m.serve("DeleteJob", c) }
func (m *mockHandler) ListRecruiterJobs(c *gin.Context)         { m.serve("ListRecruiterJobs", c) }
func (m *mockHandler) Apply(c *gin.Context)                     { m.serve("Apply", c) }
func (m *mockHandler) GetApplicationByID(c *gin.Context)        { m.serve("GetApplicationByID", c) }
func (m *mockHandler) ListJobApplications(c *gin.Context)       { m.serve("ListJobApplications", c) }
func (m *mockHandler) ListRecruiterApplications(c *gin.Context) { m.serve("ListRecruiterApplications", c) }
func (m *mockHandler) ListCandidateApplications(c *gin.Context) { m.serve("ListCandidateApplications", c) }
func (m *mockHandler) SetStatus(c *gin.Context)                 { m.serve("SetStatus", c) }
func (m *mockHandler) Shortlist(c *gin.Context)                 { m.serve("Shortlist", c) }
func (m *mockHandler) Reject(c *gin.Context)                    { m.serve("Reject", c) }
func (m *mockHandler) SetApproval(c *gin.Context)               { m.serve("SetApproval", c) }
func (m *mockHandler) SendMessage(c *gin.Context)               { m.serve("SendMessage", c) }
func (m *mockHandler) ListMessages(c *gin.Context)              { m.serve("ListMessages", c) }
func (m *mockHandler) ScheduleInterview(c *gin.Context)         { m.serve("ScheduleInterview", c) }
func (m *mockHandler) ListInterviews(c *gin.Context)            { m.serve("ListInterviews", c) }
func (m *mockHandler) GetStats(c *gin.Context)                  { m.serve("GetStats", c) }
func (m *mockHandler) BanUser(c *gin.Context)                   { m.serve("BanUser", c) }
func (m *mockHandler) UpdateUser(c *gin.Context)                { m.serve("UpdateUser", c) }

var (
	_ handlers.UserHandlerInterface        = (*mockHandler)(nil)
	_ handlers.JobHandlerInterface         = (*mockHandler)(nil)
	_ handlers.ApplicationHandlerInterface = (*mockHandler)(nil)
	_ handlers.MessageHandlerInterface     = (*mockHandler)(nil)
	_ handlers.InterviewHandlerInterface   = (*mockHandler)(nil)
	_ handlers.AdminHandlerInterface       = (*mockHandler)(nil)
)

func TestResourceRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := new(mockHandler)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterUserRoutes(api, h)
	routes.RegisterJobRoutes(api, h)
	routes.RegisterApplicationRoutes(api, h)
	routes.RegisterMessageRoutes(api, h)
	routes.RegisterInterviewRoutes(api, h)
	routes.RegisterAdminRoutes(api, h)

	const id = "7b0c3f0e-7d44-4a6c-9b8e-0f6b0e2f1a11"
	expected := []struct {
		method  string
		path    string
		handler string
	}{
		{http.MethodPost, "/api/v1/auth/register", "Register"},
		{http.MethodPost, "/api/v1/auth/login", "Login"},
		{http.MethodGet, "/api/v1/users/" + id, "GetUserByID"},
		{http.MethodPatch, "/api/v1/users/" + id, "UpdateProfile"},
		{http.MethodPost, "/api/v1/jobs", "CreateJob"},
		{http.MethodGet, "/api/v1/jobs", "ListActiveJobs"},
		{http.MethodGet, "/api/v1/jobs/" + id, "GetJobByID"},
		{http.MethodDelete, "/api/v1/jobs/" + id + "?actor_id=" + id, "DeleteJob"},
		{http.MethodGet, "/api/v1/jobs/" + id + "/applications", "ListJobApplications"},
		{http.MethodGet, "/api/v1/recruiters/" + id + "/jobs", "ListRecruiterJobs"},
		{http.MethodGet, "/api/v1/recruiters/" + id + "/applications", "ListRecruiterApplications"},
		{http.MethodGet, "/api/v1/candidates/" + id + "/applications", "ListCandidateApplications"},
		{http.MethodPost, "/api/v1/applications", "Apply"},
		{http.MethodGet, "/api/v1/applications/" + id, "GetApplicationByID"},
		{http.MethodPatch, "/api/v1/applications/" + id + "/status", "SetStatus"},
		{http.MethodPost, "/api/v1/applications/" + id + "/shortlist", "Shortlist"},
		{http.MethodPost, "/api/v1/applications/" + id + "/reject", "Reject"},
		{http.MethodPost, "/api/v1/applications/" + id + "/approval", "SetApproval"},
		{http.MethodPost, "/api/v1/messages", "SendMessage"},
		{http.MethodGet, "/api/v1/messages?user_id=" + id, "ListMessages"},
		{http.MethodPost, "/api/v1/interviews", "ScheduleInterview"},
		{http.MethodGet, "/api/v1/interviews?user_id=" + id + "&role=admin", "ListInterviews"},
		{http.MethodGet, "/api/v1/admin/stats?admin_id=" + id, "GetStats"},
		{http.MethodPost, "/api/v1/admin/ban", "BanUser"},
		{http.MethodPatch, "/api/v1/admin/users", "UpdateUser"},
	}

	for _, tt := range expected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h.On(tt.handler).Return().Once()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			h.AssertCalled(t, tt.handler)
		})
	}
	h.AssertExpectations(t)
}

package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth and user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetUserByID(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListActiveJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	DeleteJob(c *gin.Context)
	ListRecruiterJobs(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListJobApplications(c *gin.Context)
	ListRecruiterApplications(c *gin.Context)
	ListCandidateApplications(c *gin.Context)
	SetStatus(c *gin.Context)
	Shortlist(c *gin.Context)
	Reject(c *gin.Context)
	SetApproval(c *gin.Context)
}

// MessageHandlerInterface defines the methods needed by the message routes.
type MessageHandlerInterface interface {
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
}

// InterviewHandlerInterface defines the methods needed by the interview routes.
type InterviewHandlerInterface interface {
	ScheduleInterview(c *gin.Context)
	ListInterviews(c *gin.Context)
}

// AdminHandlerInterface defines the methods needed by the admin routes.
type AdminHandlerInterface interface {
	GetStats(c *gin.Context)
	BanUser(c *gin.Context)
	UpdateUser(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ UserHandlerInterface        = (*UserHandler)(nil)
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
	_ MessageHandlerInterface     = (*MessageHandler)(nil)
	_ InterviewHandlerInterface   = (*InterviewHandler)(nil)
	_ AdminHandlerInterface       = (*AdminHandler)(nil)
)

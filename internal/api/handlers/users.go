package handlers

import (
	"net/http"

	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler serves registration, login and self-service profile endpoints.
type UserHandler struct {
	service   services.IdentityService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.IdentityService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a candidate, recruiter or admin account. The same email may be registered once per role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Account details"
// @Success      201  {object}  dto.UserResponse "Account created"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409  {object}  map[string]string "Conflict - Email already registered for this role"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, MapUserModelToUserResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Checks email, password and role against the stored account and returns it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Credentials"
// @Success      200  {object}  dto.UserResponse "Login successful"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// GetUserByID godoc
// @Summary      Get a user by ID
// @Description  Retrieves the profile of a specific user.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID" Format(uuid)
// @Success      200  {object}  dto.UserResponse "Successfully retrieved user"
// @Failure      400  {object}  map[string]string "Invalid ID format"
// @Failure      404  {object}  map[string]string "User Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: id})
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Changes the supplied profile fields. Email and role cannot be changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string             true  "User ID" Format(uuid)
// @Param        fields  body      dto.ProfileFields  true  "Fields to change"
// @Success      200  {object}  dto.UserResponse "Profile updated"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "User Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, h.validator, &req.ProfileFields) {
		return
	}
	req.ID = id

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

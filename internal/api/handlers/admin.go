package handlers

import (
	"net/http"
	"strings"

	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AdminHandler serves the admin-only endpoints.
type AdminHandler struct {
	identity  services.IdentityService
	admin     services.AdminService
	validator *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(identity services.IdentityService, admin services.AdminService, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{identity: identity, admin: admin, validator: validate}
}

// GetStats godoc
// @Summary      Platform statistics
// @Description  Counts of users, jobs, applications, messages and interviews. May be served from cache.
// @Tags         admin
// @Produce      json
// @Param        admin_id query     string true "Admin user ID" Format(uuid)
// @Success      200  {object}  models.Stats "Current statistics"
// @Failure      400  {object}  map[string]string "Invalid admin ID"
// @Failure      403  {object}  map[string]string "Not an admin"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	adminID, ok := requiredQueryID(c, "admin_id")
	if !ok {
		return
	}

	stats, err := h.admin.Stats(c.Request.Context(), &dto.AdminStatsRequest{AdminID: adminID})
	if err != nil {
		respondError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// BanUser godoc
// @Summary      Ban an email
// @Description  Removes every account registered under the email, with the jobs it posted and everything attached to them.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        ban  body      dto.BanUserRequest true  "Admin and email to ban"
// @Success      200  {object}  dto.BanUserResponse "Accounts removed"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string "Not an admin"
// @Failure      404  {object}  map[string]string "No account with that email"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/ban [post]
func (h *AdminHandler) BanUser(c *gin.Context) {
	var req dto.BanUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	removed, err := h.identity.Ban(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to ban user")
		return
	}

	resp := dto.BanUserResponse{
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Removed: make([]dto.UserResponse, 0, len(removed)),
	}
	for i := range removed {
		resp.Removed = append(resp.Removed, MapUserModelToUserResponse(&removed[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUser godoc
// @Summary      Update any profile
// @Description  Lets an admin change the profile fields of the account identified by email and role.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        update body      dto.AdminUpdateUserRequest true  "Target account and fields to change"
// @Success      200  {object}  dto.UserResponse "Profile updated"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string "Not an admin"
// @Failure      404  {object}  map[string]string "Account not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/users [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.identity.AdminUpdateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

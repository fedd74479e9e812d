package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

// @Summary Register a new user
// @Description Register a new user with a role profile (resident, institution or driver).
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} Envelope{data=UserResponse}
// @Failure 400 {object} Envelope "Invalid request body or validation error"
// @Failure 409 {object} Envelope "Email already registered"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		Name:     input.Name,
		Address:  input.Address,
		Email:    input.Email,
		Password: input.Password,
		Role:     models.Role(input.Role),
		Profile: service.RegistrationProfile{
			NIK:           input.NIK,
			Phone:         input.Phone,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			InstitutionID: input.InstitutionID,
			Position:      input.Position,
		},
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusCreated, "user registered", ModelToUserResponse(user))
}

// @Summary Log in
// @Description Authenticate by email and password, returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} Envelope{data=AuthResponse}
// @Failure 400 {object} Envelope "Invalid email or password"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respond(c, http.StatusOK, "login successful", AuthResponse{
		Token: token,
		User:  ModelToUserResponse(user),
	})
}

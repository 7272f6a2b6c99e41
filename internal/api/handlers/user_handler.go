package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/services"
	"github.com/hireloop/recruitd/internal/utils"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type SignupProfileRequest struct {
	ResumeFileAddress string `json:"resume_file_address"`
	Skills            string `json:"skills"`
	Education         string `json:"education"`
	Experience        string `json:"experience"`
	Phone             string `json:"phone"` // accepted but ignored; stored as ""
}

type SignupRequest struct {
	Name            string               `json:"name" binding:"required"`
	Email           string               `json:"email" binding:"required,email"`
	Password        string               `json:"password" binding:"required"`
	Address         string               `json:"address"`
	Role            models.UserRole      `json:"role" binding:"required"`
	ProfileHeadline string               `json:"profile_headline"`
	Profile         SignupProfileRequest `json:"profile"`
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.Signup", "invalid request body", err))
		return
	}

	err := h.svc.Signup(c.Request.Context(), services.SignupInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Address:           req.Address,
		Role:              req.Role,
		ProfileHeadline:   req.ProfileHeadline,
		ResumeFileAddress: req.Profile.ResumeFileAddress,
		Skills:            req.Profile.Skills,
		Education:         req.Profile.Education,
		Experience:        req.Profile.Experience,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully!"})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"Token"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.Login", "invalid request body", err))
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: tok})
}

func (h *UserHandler) Profile(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	view, err := h.svc.GetProfile(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/recruitd/internal/services"
	"github.com/hireloop/recruitd/internal/utils"
)

type AdminHandler struct {
	svc services.AdminService
}

func NewAdminHandler(svc services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.CreateJob", "invalid request body", err))
		return
	}

	j, err := h.svc.CreateJob(c.Request.Context(), email, services.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Admin/job/%d", j.ID))
	c.JSON(http.StatusCreated, j)
}

func (h *AdminHandler) GetJob(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	jobID, err := parseID(c.Param("job_id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.GetJob", "invalid job id", err))
		return
	}

	out, err := h.svc.GetJobWithApplicants(c.Request.Context(), email, jobID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListResumes(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	resumes, err := h.svc.ListResumes(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumes)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.GetUser", "invalid user id", err))
		return
	}

	detail, err := h.svc.GetApplicant(c.Request.Context(), email, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

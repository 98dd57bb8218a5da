package handlers

import (
	"magazine-cms/helper"
	"magazine-cms/models"
	"magazine-cms/services"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	issueService services.IssueService
	Helper       *helper.HTTPHelper
}

func NewIssueHandler(issueService services.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// GetCurrentIssue resolves the issue the viewer is looking at, honoring an
// explicit ?issue= override and any stored user selection.
func (h *IssueHandler) GetCurrentIssue(c *gin.Context) {
	issue := h.issueService.Resolve(c.Query("issue"), currentUserID(c))
	h.Helper.SendSuccess(c, "Success", issue)
}

func (h *IssueHandler) GetLatestIssue(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.issueService.LatestIssue())
}

func (h *IssueHandler) SetIssuePreference(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.SetIssuePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.issueService.SetPreference(userID.(uint), req.Issue); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Issue preference saved", h.Helper.EmptyJsonMap())
}

func (h *IssueHandler) GetIssuePreference(c *gin.Context) {
	userID, _ := c.Get("user_id")

	pref, err := h.issueService.GetPreference(userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "No issue preference", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", pref)
}

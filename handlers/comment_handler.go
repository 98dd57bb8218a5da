package handlers

import (
	"magazine-cms/helper"
	"magazine-cms/models"
	"magazine-cms/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(c.Param("id"), userID.(uint), req.Body)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Comment created successfully", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.commentService.DeleteComment(c.Param("comment_id"), userID.(uint)); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) GetUnseenCount(c *gin.Context) {
	userID, _ := c.Get("user_id")

	count, err := h.commentService.UnseenCount(c.Param("id"), userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"unseen": count})
}

func (h *CommentHandler) MarkViewed(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.MarkCommentsViewedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.commentService.MarkViewed(userID.(uint), req.CommentIDs); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Comments marked as viewed", h.Helper.EmptyJsonMap())
}

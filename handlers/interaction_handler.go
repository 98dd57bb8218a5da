package handlers

import (
	"net/http"

	"magazine-cms/services"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionService services.InteractionService
}

func NewInteractionHandler(interactionService services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

func (h *InteractionHandler) MarkRead(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.interactionService.MarkRead(userID.(uint), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article marked as read"})
}

func (h *InteractionHandler) AddFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.interactionService.AddFavorite(userID.(uint), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article added to favorites"})
}

func (h *InteractionHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.interactionService.RemoveFavorite(userID.(uint), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article removed from favorites"})
}

func (h *InteractionHandler) ListFavorites(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.interactionService.ListFavorites(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/middleware"
	"github.com/pageza/gilded-spoon/backend/internal/service"
)

// KitchenHandler serves the game over HTTP
type KitchenHandler struct {
	kitchen service.IKitchenService
	tokens  service.ITokenService
}

func NewKitchenHandler(kitchenService service.IKitchenService, tokens service.ITokenService) *KitchenHandler {
	return &KitchenHandler{
		kitchen: kitchenService,
		tokens:  tokens,
	}
}

// RegisterRoutes mounts the kitchen routes. cookLimit may be nil.
func (h *KitchenHandler) RegisterRoutes(router *gin.RouterGroup, cookLimit gin.HandlerFunc) {
	cook := []gin.HandlerFunc{}
	if cookLimit != nil {
		cook = append(cook, cookLimit)
	}

	router.GET("/techniques", h.ListTechniques)
	router.GET("/recipes/count", h.RecipeCount)
	router.POST("/cook", append(cook, h.Cook)...)
	router.POST("/sessions", h.CreateSession)

	session := router.Group("/session")
	session.Use(middleware.SessionMiddleware(h.tokens))
	{
		session.GET("", h.GetSession)
		session.GET("/history", h.History)
		session.POST("/selection", h.Select)
		session.DELETE("/selection", h.ClearSelection)
		session.POST("/cook", append(cook, h.Perform)...)
	}
}

func (h *KitchenHandler) ListTechniques(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"techniques": kitchen.Techniques()})
}

func (h *KitchenHandler) RecipeCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.kitchen.RecipeCount()})
}

// Cook resolves a combination without touching any session
func (h *KitchenHandler) Cook(c *gin.Context) {
	var req CookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technique, err := kitchen.ParseTechnique(req.Technique)
	if err != nil {
		respondError(c, err)
		return
	}

	dish, err := h.kitchen.Cook(c.Request.Context(), kitchen.Ingredients(req.Ingredients...), technique)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDishResponse(dish))
}

func (h *KitchenHandler) CreateSession(c *gin.Context) {
	id, state, err := h.kitchen.NewSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		Token:     token,
		SessionID: id.String(),
		State:     newStateResponse(state),
	})
}

func (h *KitchenHandler) GetSession(c *gin.Context) {
	id, _ := middleware.SessionID(c)
	state, err := h.kitchen.State(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(state))
}

func (h *KitchenHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, _ := middleware.SessionID(c)
	state, err := h.kitchen.Select(c.Request.Context(), id, kitchen.Ingredient(req.Ingredient))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(state))
}

func (h *KitchenHandler) ClearSelection(c *gin.Context) {
	id, _ := middleware.SessionID(c)
	state, err := h.kitchen.Clear(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(state))
}

// Perform applies a technique to the session's current selection
func (h *KitchenHandler) Perform(c *gin.Context) {
	var req TechniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technique, err := kitchen.ParseTechnique(req.Technique)
	if err != nil {
		respondError(c, err)
		return
	}

	id, _ := middleware.SessionID(c)
	state, dish, err := h.kitchen.Perform(c.Request.Context(), id, technique)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PerformResponse{
		DishResponse: newDishResponse(dish),
		State:        newStateResponse(state),
	})
}

func (h *KitchenHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	id, _ := middleware.SessionID(c)
	attempts, err := h.kitchen.History(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": newHistoryEntries(attempts)})
}

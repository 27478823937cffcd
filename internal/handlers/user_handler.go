package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"furniture-catalog/internal/models"
	"furniture-catalog/internal/query"
)

// UserHandler administra la copia local de usuarios del proveedor de identidad.
type UserHandler struct {
	store UserStore
	log   zerolog.Logger
}

func NewUserHandler(store UserStore, log zerolog.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	params := c.Request.URL.Query()
	win := query.ParseWindow(params, query.DefaultUserLimit)

	users, total, err := h.store.FindMany(c.Request.Context(), query.UserFilter(params), win)
	if err != nil {
		respondError(c, h.log, "Users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": query.NewPagination(win, total),
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "User", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "User", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if patch.IsEmpty() {
		badRequest(c, "no valid fields to update")
		return
	}

	user, err := h.store.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, "User", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, "User", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

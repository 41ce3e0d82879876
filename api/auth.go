package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/internal/middleware"
	"github.com/zhanrui-dev/devbus/internal/service/account"
	"github.com/zhanrui-dev/devbus/internal/token"
)

type AuthHandler struct {
	service account.AccountUseCase
	tokens  *token.Manager
}

func NewAuthHandler(service account.AccountUseCase, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/logout", middleware.RequireAuth(h.tokens), h.logout)
	router.GET("/me", middleware.RequireAuth(h.tokens), h.me)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req account.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	session, err := h.service.Register(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req account.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	session, err := h.service.Login(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) logout(c *gin.Context) {
	h.service.Logout(c.GetString(middleware.ContextTokenID))
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) me(c *gin.Context) {
	acc, err := h.service.GetByEmail(c.GetString(middleware.ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": acc.Name, "email": acc.Email})
}

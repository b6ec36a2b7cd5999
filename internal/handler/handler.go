package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pzhuhenong/teriteri-backend/internal/account"
	"github.com/pzhuhenong/teriteri-backend/internal/middleware"
	"github.com/pzhuhenong/teriteri-backend/internal/session"
)

type Handler struct {
	accounts *account.Manager
	sessions *session.Manager
}

func NewHandler(accounts *account.Manager, sessions *session.Manager) *Handler {
	return &Handler{
		accounts: accounts,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, authMW *middleware.AuthMiddleware) {
	r.POST("/user/account/register", h.Register)
	r.POST("/user/account/login", h.Login)

	api := r.Group("/user/account")
	api.Use(middleware.GinRequireAuth(authMW))
	api.GET("/info", h.PersonalInfo)
	api.GET("/logout", h.Logout)
}

type registerRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmedPassword"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{
			Code:    http.StatusBadRequest,
			Message: "请求格式错误",
		})
		return
	}

	_, err := h.accounts.Register(
		c.Request.Context(),
		req.Username,
		req.Password,
		req.ConfirmedPassword,
	)
	if err != nil {
		c.JSON(fail(err))
		return
	}

	c.JSON(ok("注册成功！欢迎加入T站", nil))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{
			Code:    http.StatusBadRequest,
			Message: "请求格式错误",
		})
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(fail(err))
		return
	}

	c.JSON(ok("登录成功", result))
}

func (h *Handler) PersonalInfo(c *gin.Context) {
	uid, found := middleware.CallerUIDFromContext(c.Request.Context())
	if !found {
		c.JSON(http.StatusUnauthorized, response{
			Code:    http.StatusUnauthorized,
			Message: "未登录",
		})
		return
	}

	profile, err := h.sessions.PersonalInfo(c.Request.Context(), uid)
	if err != nil {
		c.JSON(fail(err))
		return
	}

	c.JSON(ok("", profile))
}

func (h *Handler) Logout(c *gin.Context) {
	uid, found := middleware.CallerUIDFromContext(c.Request.Context())
	if !found {
		c.JSON(http.StatusUnauthorized, response{
			Code:    http.StatusUnauthorized,
			Message: "未登录",
		})
		return
	}

	// always succeeds from the caller's perspective
	h.sessions.Logout(c.Request.Context(), uid)

	c.JSON(ok("退出登录成功", nil))
}

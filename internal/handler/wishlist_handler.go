package handler

import (
	"net/http"
	"strconv"
	"time"

	"vastram/internal/config"
	"vastram/internal/domain/model"
	"vastram/internal/middleware"
	"vastram/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /wishlist のHTTP。ログインしていなくても使える。
type WishlistHandler struct {
	uc           *usecase.WishlistUsecase
	cookieSecure bool
	sessionTTL   time.Duration
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase, cookieSecure bool) *WishlistHandler {
	return &WishlistHandler{
		uc:           uc,
		cookieSecure: cookieSecure,
		sessionTTL:   30 * 24 * time.Hour,
	}
}

type AddWishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/wishlist")
	g.Use(middleware.ResolveIdentity(cfg))

	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:id", h.remove)
}

// 持ち主を決める。匿名かつCookie未発行の場合はこの場で発行する。
func (h *WishlistHandler) resolveOwner(c echo.Context, issueIfMissing bool) (model.Identity, bool) {
	if owner, ok := middleware.IdentityFromContext(c); ok {
		return owner, true
	}
	if !issueIfMissing {
		return model.Identity{}, false
	}

	//匿名ユーザーの初回操作。セッションCookieを新規発行する
	token := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})
	return model.AnonymousSession(token), true
}

func (h *WishlistHandler) list(c echo.Context) error {
	owner, ok := h.resolveOwner(c, false)
	if !ok {
		//持ち主が決まらないなら空のお気に入りを返す
		return c.JSON(http.StatusOK, usecase.WishlistResponse{Items: []usecase.WishlistItemResponse{}})
	}

	out, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) add(c echo.Context) error {
	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	owner, _ := h.resolveOwner(c, true)

	out, err := h.uc.Add(c.Request().Context(), owner, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	//既に登録済みなら200、新規なら201
	status := http.StatusOK
	if out.Added {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *WishlistHandler) remove(c echo.Context) error {
	owner, ok := h.resolveOwner(c, false)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Remove(c.Request().Context(), owner, entryID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "removed"})
}

package middleware

import (
	"strings"

	"vastram/internal/config"
	"vastram/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	CtxIdentityKey = "identity" // model.Identity

	// 匿名ユーザー識別用のCookie名
	SessionCookieName = "vastram_session"
)

// ログイン済みならJWTから、未ログインならセッションCookieから
// 持ち主（Identity）を決める。どちらも無ければ空のIdentityのまま通す
// （Cookieの新規発行はハンドラ側で行う）。
func ResolveIdentity(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Bearerトークンがあれば検証してログインユーザー扱い
			authz := c.Request().Header.Get("Authorization")
			if authz != "" {
				parts := strings.SplitN(authz, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					claims, err := parseAndVerify(strings.TrimSpace(parts[1]), cfg.JWTSecret)
					if err == nil {
						if userID, err := parseUserID(claims["sub"]); err == nil && userID > 0 {
							c.Set(CtxIdentityKey, model.RegisteredUser(userID))
							c.Set(CtxUserIDKey, userID)
							return next(c)
						}
					}
				}
				//壊れたトークンは無視して匿名として続行
			}

			//セッションCookieがあれば匿名ユーザー扱い
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				c.Set(CtxIdentityKey, model.AnonymousSession(cookie.Value))
			}

			return next(c)
		}
	}
}

// ResolveIdentityが入れたIdentityを取り出す
func IdentityFromContext(c echo.Context) (model.Identity, bool) {
	v := c.Get(CtxIdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	if !ok || !id.IsValid() {
		return model.Identity{}, false
	}
	return id, true
}

package middleware

import (
	"net/http"

	"vastram/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextのroleを確認し、ADMIN以外の/adminアクセスを止める。
//AuthJWTの後段に置くこと（roleはJWTのクレーム由来）。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != string(model.RoleAdmin) {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}

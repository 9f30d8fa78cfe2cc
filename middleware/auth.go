package middleware

import (
	"slices"

	"hotelops/constants"
	"hotelops/errors"
	"hotelops/response"
	"hotelops/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực token HS256 và kiểm tra role
func AuthMiddleware(secret string, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, userRole, err := services.ParseToken(authHeader, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 && !slices.Contains(roles, userRole) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(constants.CtxUserID, userID)
		c.Set(constants.CtxUserRole, userRole)
		c.Next()
	}
}

// RoleMiddleware kiểm tra role của user
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(constants.CtxUserRole)
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role, _ := userRole.(int)
		if !slices.Contains(roles, role) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler trả về lỗi cuối cùng mà controller đẩy vào c.Errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if errors.IsAppError(err) {
			response.FromError(c, err)
			return
		}
		response.ServerError(c)
	}
}

package middleware

import "github.com/gin-gonic/gin"

const ExposeErrorsKey = "ExposeErrors"

// 決定資料庫錯誤訊息是否原樣回傳給客戶端
func ErrorPolicyMiddleware(exposeErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ExposeErrorsKey, exposeErrors)
		c.Next()
	}
}

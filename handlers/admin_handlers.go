package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// 註冊管理員帳戶
func RegisterAdminHandler(c *gin.Context, admins AdminStore) {
	data, err := bindJSONObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	fields, ok := requireStrings(data, "name", "email", "password")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	_, err = admins.Register(c.Request.Context(), fields["name"], fields["email"], fields["password"])
	if err != nil {
		respondError(c, "Failed to register admin", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
	})
}

// 管理員登入，只回答驗證是否成功
func LoginAdminHandler(c *gin.Context, admins AdminStore) {
	data, err := bindJSONObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	fields, ok := requireStrings(data, "email", "password")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	err = admins.Authenticate(c.Request.Context(), fields["email"], fields["password"])
	if err != nil {
		respondError(c, "Failed to log in admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
	})
}

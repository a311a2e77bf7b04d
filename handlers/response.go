package handlers

import (
	"ShopAdmin/apperr"
	"ShopAdmin/middleware"
	"bytes"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"io"
	"log"
	"net/http"
	"strconv"
)

var errNotObject = errors.New("request body must be a JSON object")

// 將錯誤轉換為對應的HTTP狀態碼與回應
func respondError(c *gin.Context, message string, err error) {
	var status int
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		respondStorageFault(c, message, err)
		return
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

func respondStorageFault(c *gin.Context, message string, err error) {
	log.Printf("[%s] %s: %v\n", c.GetString(middleware.RequestIDKey), message, err)

	detail := "internal server error"
	if c.GetBool(middleware.ExposeErrorsKey) {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": message,
		"error":   detail,
	})
}

// 讀取JSON物件，數字保留為json.Number以便後續轉換
func bindJSONObject(c *gin.Context) (map[string]any, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil || data == nil {
		return nil, errNotObject
	}
	//物件之後不可有其他內容
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}
	return data, nil
}

// 檢查必要欄位皆存在且為字串
func requireStrings(data map[string]any, fields ...string) (map[string]string, bool) {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		value, ok := data[field].(string)
		if !ok {
			return nil, false
		}
		values[field] = value
	}
	return values, true
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// 將json中的order_id轉換為數字，可接受數字或數字字串
func parseJSONID(raw any) (uint, bool) {
	switch v := raw.(type) {
	case json.Number:
		return parseID(v.String())
	case string:
		return parseID(v)
	default:
		return 0, false
	}
}

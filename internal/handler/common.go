package handler

import (
	"net/http"
	"strconv"

	"airport-booking-api/internal/model"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// PathID parses the :id path parameter. On failure it writes a 400 and the
// caller must return.
func PathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return id, true
}

// BindPage reads pagination query parameters, falling back to the defaults
// on malformed input.
func BindPage(c *gin.Context) model.Page {
	var page model.Page
	_ = c.ShouldBindQuery(&page)
	return page.Normalize()
}

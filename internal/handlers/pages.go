package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page renders one of the embedded directory pages. The pages are plain
// HTML shells; all data flows through the JSON API.
func Page(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, nil)
	}
}

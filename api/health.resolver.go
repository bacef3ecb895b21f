package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) health(c *gin.Context) {
	report := h.SuiteService.RunAll(c.Request.Context())

	code := 200
	if !report.CriticalPassed {
		code = 503
	}
	c.JSON(code, report)
}

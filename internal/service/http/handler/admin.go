package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/internal/modules/dao"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
)

func AdminStats(c *gin.Context) {
	stats, err := dao.AdminStats()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(stats))
}

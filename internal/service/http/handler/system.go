package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/components/mysql"
	"github.com/pixelpress/pixelpress/internal/modules/consts"
	"github.com/pixelpress/pixelpress/internal/modules/params"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": mysql.Enabled(),
		"storage":  config.GConfig.StorageSupplier,
	})
}

func Info(c *gin.Context) {
	caps := response.Capabilities{
		Service: "pixelpress",
		Formats: []string{
			consts.FormatJPEG.String(),
			consts.FormatPNG.String(),
			consts.FormatWebP.String(),
			consts.FormatAVIF.String(),
		},
		MaxUploadBytes: config.GConfig.MaxUploadBytes,
		QualityRange:   [2]int{params.MinQuality, params.MaxQuality},
		Persistence:    mysql.Enabled(),
		Storage:        config.GConfig.StorageSupplier,
	}
	body, err := caps.Marsh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(body))
}

package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/auth"
	"github.com/pixelpress/pixelpress/internal/modules/params"
	"github.com/pixelpress/pixelpress/internal/modules/pipeline"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
	"github.com/pixelpress/pixelpress/internal/service/http/middleware"
)

var compressPipeline *pipeline.Pipeline

// InitCompress wires the pipeline in during startup.
func InitCompress(p *pipeline.Pipeline) {
	compressPipeline = p
}

func Compress(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image file is required"))
		return
	}
	defer file.Close()

	// Reject oversized uploads before any codec work.
	maxBytes := config.GConfig.MaxUploadBytes
	if header.Size > maxBytes {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image exceeds the upload size limit"))
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	if int64(len(data)) > maxBytes {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image exceeds the upload size limit"))
		return
	}

	prm := params.Resolve(params.RawOptions{
		Quality:             c.PostForm("quality"),
		Format:              c.PostForm("format"),
		Width:               c.PostForm("width"),
		Height:              c.PostForm("height"),
		MaintainAspectRatio: c.PostForm("maintainAspectRatio"),
	})

	var identity *auth.Identity
	if id, ok := middleware.Identity(c); ok {
		identity = &id
	}

	result, err := compressPipeline.Compress(c.Request.Context(), header.Filename, data, prm, identity)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(result))
}

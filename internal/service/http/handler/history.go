package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/internal/modules/dao"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/pipeline"
	"github.com/pixelpress/pixelpress/internal/modules/queue"
	"github.com/pixelpress/pixelpress/internal/modules/storage"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/request"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
	"github.com/pixelpress/pixelpress/internal/service/http/middleware"
)

func History(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	form := request.History{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	page, err := dao.ListRecords(identity.UserId, form.Page, form.Limit, form.SortBy, form.SortOrder)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(page))
}

func Stats(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	aggregate, err := dao.UserAggregate(identity.UserId)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := dao.UserById(identity.UserId)
	if err != nil {
		response.Error(c, err)
		return
	}
	// The aggregate and the user's running counters are reported side by
	// side; counter bumps are best-effort so the two can drift.
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"aggregate": aggregate,
		"counters": gin.H{
			"compressionCount": user.CompressionCount,
			"totalBytesSaved":  user.TotalBytesSaved,
			"lastCompression":  user.LastCompression,
		},
	}))
}

func DeleteRecord(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	recordId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("record id must be an integer"))
		return
	}
	record, err := dao.DeleteRecord(identity.UserId, recordId)
	if err != nil {
		response.Error(c, err)
		return
	}
	// Artifact removal is best-effort; a missing file is not an error.
	queue.Enqueue(&pipeline.ArtifactDeleteTask{
		Store:     storage.Artifacts,
		Filename:  record.CompressedName,
		Thumbnail: record.ThumbnailName,
	})
	c.JSON(http.StatusOK, response.Success)
}

func Cleanup(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("invalid filename"))
		return
	}
	// 404 is keyed on the artifact itself, whether or not a record exists.
	if !storage.Artifacts.Exists(filename) {
		response.Error(c, errs.Newf(errs.KindNotFound, "handler.cleanup", "no artifact named %q", filename))
		return
	}
	if err := dao.DeleteRecordByFilename(identity.UserId, filename); err != nil {
		response.Error(c, err)
		return
	}
	if err := storage.Artifacts.Delete(filename); err != nil {
		response.Error(c, errs.Wrap(errs.KindInternal, "handler.cleanup", err))
		return
	}
	thumb := pipeline.ThumbName(filename)
	if storage.Artifacts.Exists(thumb) {
		_ = storage.Artifacts.Delete(thumb)
	}
	c.JSON(http.StatusOK, response.Success)
}

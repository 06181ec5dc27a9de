package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/logs"
)

var (
	ParamError            = gin.H{"code": 10001, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10001, "message": message}
	}

	InternalError = gin.H{"code": 10002, "message": "internal error"}

	TooManyRequests = gin.H{"code": 10008, "message": "too many requests, try again later"}

	SuccessWithData = func(data interface{}) gin.H {
		return gin.H{"code": 0, "data": data}
	}
	Success = gin.H{"code": 0}
)

// Error maps a failure onto the wire taxonomy. Unexpected errors are logged
// in full and, outside debug mode, returned as a generic message.
func Error(c *gin.Context, err error) {
	message := errs.Message(err)
	switch errs.KindOf(err) {
	case errs.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": message})
	case errs.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"code": 10003, "message": message})
	case errs.KindAuth:
		c.JSON(http.StatusUnauthorized, gin.H{"code": 10004, "message": message})
	case errs.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"code": 10005, "message": message})
	case errs.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"code": 10006, "message": message})
	case errs.KindTooMany:
		c.JSON(http.StatusTooManyRequests, TooManyRequests)
	case errs.KindUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": 10007, "message": message})
	case errs.KindDecode, errs.KindCompression:
		logs.Logger.Err(err).Str("path", c.Request.URL.Path).Msg("codec failure")
		c.JSON(http.StatusInternalServerError, gin.H{"code": 10009, "message": message})
	default:
		logs.Logger.Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
		if gin.Mode() == gin.DebugMode {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 10002, "message": message})
			return
		}
		c.JSON(http.StatusInternalServerError, InternalError)
	}
}

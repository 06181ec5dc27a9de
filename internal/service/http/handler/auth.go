package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/auth"
	"github.com/pixelpress/pixelpress/internal/modules/consts"
	"github.com/pixelpress/pixelpress/internal/modules/dao"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/request"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
	"github.com/pixelpress/pixelpress/internal/service/http/middleware"
)

// The same message covers unknown email and wrong password so login failures
// cannot be used to enumerate accounts.
const badCredentials = "invalid email or password"

func Register(c *gin.Context) {
	form := request.Register{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	if form.Username == "" || form.Email == "" || form.Password == "" {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("username, email and password are required"))
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	user := model.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		Role:         consts.RoleUser.String(),
	}
	if err := dao.CreateUser(&user); err != nil {
		response.Error(c, err)
		return
	}

	token, err := auth.GenerateToken(&user, config.GConfig)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessWithData(response.Session{Token: token, User: user.Public()}))
}

func Login(c *gin.Context) {
	form := request.Login{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}

	user, err := dao.UserByEmail(strings.ToLower(strings.TrimSpace(form.Email)))
	if err != nil {
		if errs.Is(err, errs.KindNotFound) {
			response.Error(c, errs.Newf(errs.KindAuth, "handler.login", badCredentials))
			return
		}
		response.Error(c, err)
		return
	}
	if !auth.CheckPassword(form.Password, user.PasswordHash) {
		response.Error(c, errs.Newf(errs.KindAuth, "handler.login", badCredentials))
		return
	}

	token, err := auth.GenerateToken(&user, config.GConfig)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.Session{Token: token, User: user.Public()}))
}

func Me(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	user, err := dao.UserById(identity.UserId)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(user.Public()))
}

func UpdateProfile(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	form := request.UpdateProfile{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("username is required"))
		return
	}
	user, err := dao.UpdateUsername(identity.UserId, form.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(user.Public()))
}

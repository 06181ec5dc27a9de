package response

import (
	"github.com/pixelpress/pixelpress/internal/modules/model"
)

type Session struct {
	Token string       `json:"token"`
	User  model.Public `json:"user"`
}

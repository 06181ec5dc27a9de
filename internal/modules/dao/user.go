package dao

import (
	"errors"
	"time"

	"github.com/pixelpress/pixelpress/internal/components/mysql"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"gorm.io/gorm"
)

func CreateUser(user *model.User) error {
	if !mysql.Enabled() {
		return errs.New(errs.KindUnavailable, "dao.user.create", errs.ErrFeatureUnavailable)
	}
	var count int64
	err := mysql.DB.Model(&model.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return errs.Wrap(errs.KindInternal, "dao.user.create", err)
	}
	if count > 0 {
		return errs.Newf(errs.KindConflict, "dao.user.create", "username or email already in use")
	}
	err = mysql.DB.Model(&model.User{}).Create(user).Error
	if err != nil {
		// Racing registration can still hit the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Newf(errs.KindConflict, "dao.user.create", "username or email already in use")
		}
		return errs.Wrap(errs.KindInternal, "dao.user.create", err)
	}
	return nil
}

func UserByEmail(email string) (model.User, error) {
	if !mysql.Enabled() {
		return model.User{}, errs.New(errs.KindUnavailable, "dao.user.by_email", errs.ErrFeatureUnavailable)
	}
	var user model.User
	err := mysql.DB.Model(&model.User{}).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, errs.Newf(errs.KindNotFound, "dao.user.by_email", "no user for email")
		}
		return model.User{}, errs.Wrap(errs.KindInternal, "dao.user.by_email", err)
	}
	return user, nil
}

func UserById(id int) (model.User, error) {
	if !mysql.Enabled() {
		return model.User{}, errs.New(errs.KindUnavailable, "dao.user.by_id", errs.ErrFeatureUnavailable)
	}
	var user model.User
	err := mysql.DB.Model(&model.User{}).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, errs.Newf(errs.KindNotFound, "dao.user.by_id", "no user %d", id)
		}
		return model.User{}, errs.Wrap(errs.KindInternal, "dao.user.by_id", err)
	}
	return user, nil
}

func UpdateUsername(id int, username string) (model.User, error) {
	if !mysql.Enabled() {
		return model.User{}, errs.New(errs.KindUnavailable, "dao.user.update", errs.ErrFeatureUnavailable)
	}
	var count int64
	err := mysql.DB.Model(&model.User{}).
		Where("username = ? AND id <> ?", username, id).
		Count(&count).Error
	if err != nil {
		return model.User{}, errs.Wrap(errs.KindInternal, "dao.user.update", err)
	}
	if count > 0 {
		return model.User{}, errs.Newf(errs.KindConflict, "dao.user.update", "username already in use")
	}
	err = mysql.DB.Model(&model.User{}).Where("id = ?", id).Update("username", username).Error
	if err != nil {
		return model.User{}, errs.Wrap(errs.KindInternal, "dao.user.update", err)
	}
	return UserById(id)
}

// BumpCounters adds one compression and its savings to the user's running
// totals. Called after the history record write; the two are not atomic and
// the stats endpoint reports both sides.
func BumpCounters(id int, bytesSaved int64) error {
	if !mysql.Enabled() {
		return errs.New(errs.KindUnavailable, "dao.user.bump", errs.ErrFeatureUnavailable)
	}
	now := time.Now()
	err := mysql.DB.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"compression_count": gorm.Expr("compression_count + 1"),
		"total_bytes_saved": gorm.Expr("total_bytes_saved + ?", bytesSaved),
		"last_compression":  now,
	}).Error
	return errs.Wrap(errs.KindInternal, "dao.user.bump", err)
}

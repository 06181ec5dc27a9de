package dao

import (
	"errors"
	"math"

	"github.com/pixelpress/pixelpress/internal/components/mysql"
	"github.com/pixelpress/pixelpress/internal/modules/consts"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"gorm.io/gorm"
)

func CreateRecord(record *model.CompressionRecord) error {
	if !mysql.Enabled() {
		return errs.New(errs.KindUnavailable, "dao.record.create", errs.ErrFeatureUnavailable)
	}
	err := mysql.DB.Model(&model.CompressionRecord{}).Create(record).Error
	return errs.Wrap(errs.KindInternal, "dao.record.create", err)
}

type Page struct {
	Records    []model.CompressionRecord `json:"records"`
	Total      int64                     `json:"total"`
	Pages      int                       `json:"pages"`
	PageNumber int                       `json:"page"`
	Limit      int                       `json:"limit"`
}

func ListRecords(userId, page, limit int, sortBy, sortOrder string) (Page, error) {
	if !mysql.Enabled() {
		return Page{}, errs.New(errs.KindUnavailable, "dao.record.list", errs.ErrFeatureUnavailable)
	}
	if page < 1 || limit < 1 {
		return Page{}, errs.Newf(errs.KindValidation, "dao.record.list", "page and limit must be >= 1")
	}
	if !consts.ValidSortField(sortBy) {
		return Page{}, errs.Newf(errs.KindValidation, "dao.record.list", "unknown sort field %q", sortBy)
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return Page{}, errs.Newf(errs.KindValidation, "dao.record.list", "sort order must be asc or desc")
	}

	var total int64
	err := mysql.DB.Model(&model.CompressionRecord{}).Where("user_id = ?", userId).Count(&total).Error
	if err != nil {
		return Page{}, errs.Wrap(errs.KindInternal, "dao.record.list", err)
	}

	var records []model.CompressionRecord
	err = mysql.DB.Model(&model.CompressionRecord{}).
		Where("user_id = ?", userId).
		Order(consts.SortField(sortBy).Column() + " " + sortOrder).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return Page{}, errs.Wrap(errs.KindInternal, "dao.record.list", err)
	}

	return Page{
		Records:    records,
		Total:      total,
		Pages:      int(math.Ceil(float64(total) / float64(limit))),
		PageNumber: page,
		Limit:      limit,
	}, nil
}

type Aggregate struct {
	Count          int64   `json:"count"`
	OriginalBytes  int64   `json:"originalBytes"`
	CompressedBytes int64  `json:"compressedBytes"`
	AverageRatio   float64 `json:"averageRatio"`
}

func UserAggregate(userId int) (Aggregate, error) {
	if !mysql.Enabled() {
		return Aggregate{}, errs.New(errs.KindUnavailable, "dao.record.aggregate", errs.ErrFeatureUnavailable)
	}
	var agg struct {
		Count           int64
		OriginalBytes   int64
		CompressedBytes int64
		AverageRatio    float64
	}
	err := mysql.DB.Model(&model.CompressionRecord{}).
		Select("COUNT(*) AS count, COALESCE(SUM(original_size), 0) AS original_bytes, COALESCE(SUM(compressed_size), 0) AS compressed_bytes, COALESCE(AVG(compression_ratio), 0) AS average_ratio").
		Where("user_id = ?", userId).
		Scan(&agg).Error
	if err != nil {
		return Aggregate{}, errs.Wrap(errs.KindInternal, "dao.record.aggregate", err)
	}
	return Aggregate{
		Count:           agg.Count,
		OriginalBytes:   agg.OriginalBytes,
		CompressedBytes: agg.CompressedBytes,
		AverageRatio:    agg.AverageRatio,
	}, nil
}

// DeleteRecord removes a record owned by userId and returns it so the caller
// can clean up the artifact. A record owned by someone else reads as absent.
func DeleteRecord(userId, recordId int) (model.CompressionRecord, error) {
	if !mysql.Enabled() {
		return model.CompressionRecord{}, errs.New(errs.KindUnavailable, "dao.record.delete", errs.ErrFeatureUnavailable)
	}
	var record model.CompressionRecord
	err := mysql.DB.Model(&model.CompressionRecord{}).
		Where("id = ? AND user_id = ?", recordId, userId).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.CompressionRecord{}, errs.Newf(errs.KindNotFound, "dao.record.delete", "no record %d", recordId)
		}
		return model.CompressionRecord{}, errs.Wrap(errs.KindInternal, "dao.record.delete", err)
	}
	err = mysql.DB.Delete(&model.CompressionRecord{}, record.Id).Error
	if err != nil {
		return model.CompressionRecord{}, errs.Wrap(errs.KindInternal, "dao.record.delete", err)
	}
	return record, nil
}

// DeleteRecordByFilename removes the record referencing an artifact filename,
// scoped to its owner. Missing records are not an error here: the cleanup
// endpoint keys its 404 on the artifact itself.
func DeleteRecordByFilename(userId int, filename string) error {
	if !mysql.Enabled() {
		return errs.New(errs.KindUnavailable, "dao.record.delete_by_name", errs.ErrFeatureUnavailable)
	}
	err := mysql.DB.Where("user_id = ? AND compressed_name = ?", userId, filename).
		Delete(&model.CompressionRecord{}).Error
	return errs.Wrap(errs.KindInternal, "dao.record.delete_by_name", err)
}

type AdminAggregate struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalCompressions int64 `json:"totalCompressions"`
	TotalBytesStored  int64 `json:"totalBytesStored"`
	TotalBytesSaved   int64 `json:"totalBytesSaved"`
}

func AdminStats() (AdminAggregate, error) {
	if !mysql.Enabled() {
		return AdminAggregate{}, errs.New(errs.KindUnavailable, "dao.record.admin_stats", errs.ErrFeatureUnavailable)
	}
	var out AdminAggregate
	err := mysql.DB.Model(&model.User{}).Count(&out.TotalUsers).Error
	if err != nil {
		return AdminAggregate{}, errs.Wrap(errs.KindInternal, "dao.record.admin_stats", err)
	}
	var agg struct {
		Count  int64
		Stored int64
		Saved  int64
	}
	err = mysql.DB.Model(&model.CompressionRecord{}).
		Select("COUNT(*) AS count, COALESCE(SUM(compressed_size), 0) AS stored, COALESCE(SUM(original_size - compressed_size), 0) AS saved").
		Scan(&agg).Error
	if err != nil {
		return AdminAggregate{}, errs.Wrap(errs.KindInternal, "dao.record.admin_stats", err)
	}
	out.TotalCompressions = agg.Count
	out.TotalBytesStored = agg.Stored
	out.TotalBytesSaved = agg.Saved
	return out, nil
}

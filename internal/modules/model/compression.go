package model

import (
	"time"
)

type CompressionRecord struct {
	Id     int `json:"id" gorm:"primaryKey"`
	UserId int `json:"user_id" gorm:"column:user_id;type:int;not null;index"`

	OriginalName   string `json:"original_name" gorm:"column:original_name;type:varchar(255)"`
	CompressedName string `json:"compressed_name" gorm:"column:compressed_name;type:varchar(100);index"`

	OriginalSize     int64   `json:"original_size" gorm:"column:original_size;type:bigint"`
	CompressedSize   int64   `json:"compressed_size" gorm:"column:compressed_size;type:bigint"`
	CompressionRatio float64 `json:"compression_ratio" gorm:"column:compression_ratio;type:double"`

	Format  string `json:"format" gorm:"column:format;type:varchar(10)"`
	Quality int    `json:"quality" gorm:"column:quality;type:int"`

	OriginalWidth    int `json:"original_width" gorm:"column:original_width;type:int"`
	OriginalHeight   int `json:"original_height" gorm:"column:original_height;type:int"`
	CompressedWidth  int `json:"compressed_width" gorm:"column:compressed_width;type:int"`
	CompressedHeight int `json:"compressed_height" gorm:"column:compressed_height;type:int"`

	StorageSupplierName string `json:"storage_supplier_name" gorm:"column:storage_supplier_name;type:varchar(20)"`
	ThumbnailName       string `json:"thumbnail_name" gorm:"column:thumbnail_name;type:varchar(100)"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (CompressionRecord) TableName() string {
	return "compression_record"
}

package model

import (
	"time"
)

type User struct {
	Id           int    `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"column:username;type:varchar(30);uniqueIndex;not null"`
	Email        string `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string `json:"role" gorm:"column:role;type:enum('user','admin');default:'user'"`

	// Running totals, bumped best-effort after each recorded compression.
	CompressionCount int        `json:"compression_count" gorm:"column:compression_count;type:int;default:0"`
	TotalBytesSaved  int64      `json:"total_bytes_saved" gorm:"column:total_bytes_saved;type:bigint;default:0"`
	LastCompression  *time.Time `json:"last_compression" gorm:"column:last_compression;type:datetime"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "user"
}

// Public is the wire shape of a user; the password hash never leaves the
// model layer.
type Public struct {
	Id               int        `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	CompressionCount int        `json:"compressionCount"`
	TotalBytesSaved  int64      `json:"totalBytesSaved"`
	LastCompression  *time.Time `json:"lastCompression,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func (u *User) Public() Public {
	return Public{
		Id:               u.Id,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		CompressionCount: u.CompressionCount,
		TotalBytesSaved:  u.TotalBytesSaved,
		LastCompression:  u.LastCompression,
		CreatedAt:        u.CreatedAt,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Movie mirrors the remote premium content table. Free music videos never
// touch this table; they live only in the per-device cache slots.
type Movie struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title        string    `gorm:"column:title;not null"`
	Description  string    `gorm:"column:description;not null;default:''"`
	VideoURL     string    `gorm:"column:video_url;not null"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;not null;default:''"`
	Duration     int       `gorm:"column:duration;not null;default:0"`
	IsNew        bool      `gorm:"column:is_new;not null;default:false"`
	IsPremium    bool      `gorm:"column:is_premium;not null;default:true"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the remote table name.
func (Movie) TableName() string { return "movies" }

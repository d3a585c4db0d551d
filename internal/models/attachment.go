package models

// TaskAttachment - фото результата работы, прикрепленное исполнителем до сдачи задачи
type TaskAttachment struct {
	BaseModel
	TaskID          string `gorm:"type:varchar(36);not null;index"`
	UploadedBy      string `gorm:"type:varchar(36);not null"`
	OriginalName    string `gorm:"size:255"`
	MimeType        string `gorm:"size:50;not null"`
	Size            int64  `gorm:"not null"`
	Width           int
	Height          int
	Path            string `gorm:"size:500;not null"`
	ThumbnailPath   string `gorm:"size:500"`
	StorageProvider string `gorm:"size:20;not null;default:'local'"`
}

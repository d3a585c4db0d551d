package dto

import (
	"time"

	"workhub_backend/internal/models"
)

// UploadFile - содержимое multipart-поля file
type UploadFile struct {
	Name string
	Data []byte
}

type AttachmentResponse struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"taskId"`
	UploadedBy   string    `json:"uploadedBy"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewAttachmentResponse(a *models.TaskAttachment, url, thumbnailURL string) *AttachmentResponse {
	return &AttachmentResponse{
		ID:           a.ID,
		TaskID:       a.TaskID,
		UploadedBy:   a.UploadedBy,
		OriginalName: a.OriginalName,
		MimeType:     a.MimeType,
		Size:         a.Size,
		Width:        a.Width,
		Height:       a.Height,
		URL:          url,
		ThumbnailURL: thumbnailURL,
		CreatedAt:    a.CreatedAt,
	}
}

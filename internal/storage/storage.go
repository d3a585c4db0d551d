package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage - файловое хранилище вложений
type Storage interface {
	// Save сохраняет файл по ключу path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete удаляет файл; отсутствие файла ошибкой не считается
	Delete(ctx context.Context, path string) error

	Exists(ctx context.Context, path string) (bool, error)

	// URL возвращает ссылку для скачивания. Для приватных бакетов ссылка подписана и живет ttl.
	URL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// Provider - имя провайдера, сохраняется вместе с вложением
	Provider() string
}

// Config - настройки хранилища
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local
	BaseURL    string // публичный адрес файлов
	Bucket     string // s3 / r2
	Region     string // s3
	AccessKey  string
	SecretKey  string
	Endpoint   string // r2 или совместимый с S3 сервис
	PublicRead bool   // false - отдаются подписанные ссылки
}

// NewStorage создает хранилище по типу из конфига
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

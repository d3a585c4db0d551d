package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// ErrUnsupportedImage - файл не является JPEG или PNG
var ErrUnsupportedImage = errors.New("unsupported image format")

// ThumbnailSide - длинная сторона превью
const ThumbnailSide = 400

var mimeTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// Image - декодированное изображение вложения
type Image struct {
	img      image.Image
	Format   string
	MimeType string
	Width    int
	Height   int
}

// Processor декодирует фото и строит JPEG-превью
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Decode проверяет формат и размеры изображения
func (p *Processor) Decode(data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	mime, ok := mimeTypes[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}

	return &Image{
		img:      img,
		Format:   format,
		MimeType: mime,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// Thumbnail уменьшает изображение до maxSide по длинной стороне и кодирует в JPEG.
// Маленькие изображения не увеличиваются.
func (p *Processor) Thumbnail(src *Image, maxSide int) ([]byte, error) {
	if maxSide <= 0 {
		maxSide = ThumbnailSide
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, p.resize(src.img, maxSide), &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resize сохраняет пропорции
func (p *Processor) resize(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxSide && height <= maxSide {
		return flatten(img)
	}

	newWidth, newHeight := maxSide, maxSide
	if width > height {
		newHeight = max(1, height*maxSide/width)
	} else {
		newWidth = max(1, width*maxSide/height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// flatten кладет изображение на белый фон (прозрачность PNG в JPEG не переносится)
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}

// EncodePNG - вспомогательная функция для тестов и сидов
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
)

// formPhoto lee el archivo del campo field de un multipart. Sin multipart o sin archivo → nil.
func formPhoto(c *fiber.Ctx, field string, maxBytes int64) (*dto.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]
	if fh.Size > maxBytes {
		return nil, fmt.Errorf("%w: máximo %d bytes", domain.ErrPayloadTooLarge, maxBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer archivo subido: %w", err)
	}
	return &dto.FileUpload{Name: fh.Filename, ContentType: fh.Header.Get(fiber.HeaderContentType), Data: data}, nil
}

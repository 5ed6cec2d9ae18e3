package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/labstack/echo/v4"
)

// multipartSlack covers the multipart framing around the file part.
const multipartSlack = 64 << 10

// multipartUpload reads the named multipart file of the current request.
// The request body is only touched when the upload is read.
func multipartUpload(c echo.Context, field string, maxBytes int64) domain.Upload {
	return domain.UploadFunc(func(ctx context.Context) ([]byte, error) {
		req := c.Request()
		if maxBytes > 0 {
			req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBytes+multipartSlack)
		}

		fh, err := c.FormFile(field)
		if err != nil {
			return nil, uploadError(err)
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return nil, &domain.UploadError{Err: domain.ErrUploadTooLarge}
		}

		src, err := fh.Open()
		if err != nil {
			return nil, &domain.UploadError{Err: fmt.Errorf("open %s: %w", field, err)}
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, &domain.UploadError{Err: fmt.Errorf("read %s: %w", field, err)}
		}
		return data, nil
	})
}

func uploadError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return &domain.UploadError{Err: domain.ErrUploadMissing}
	case errors.As(err, &maxErr):
		return &domain.UploadError{Err: domain.ErrUploadTooLarge}
	default:
		return &domain.UploadError{Err: err}
	}
}

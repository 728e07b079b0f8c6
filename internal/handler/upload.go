package handler

import (
	"context"  // context carries request deadlines
	"errors"   // errors matches sentinel errors
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
	"go.uber.org/zap"             // zap structured logging

	"github.com/iliyamo/musician-site/internal/metrics" // metrics holds Prometheus counters
	"github.com/iliyamo/musician-site/internal/storage" // storage validates and stores uploads
)

// Uploader validates a file and stores it.
type Uploader interface {
	Check(kind storage.Kind, f storage.File) error
	Upload(ctx context.Context, kind storage.Kind, f storage.File) (string, error)
}

// UploadHandler accepts admin media uploads (multipart fields file and
// type).
type UploadHandler struct {
	Uploader Uploader
	Log      *zap.Logger
}

func NewUploadHandler(u Uploader, log *zap.Logger) *UploadHandler {
	return &UploadHandler{Uploader: u, Log: log}
}

var uploadMessages = map[storage.Kind]map[error]string{
	storage.KindImage: {
		storage.ErrTooLarge:    "Image too large. Maximum size is 10MB.",
		storage.ErrContentType: "Invalid image type. Allowed: JPEG, PNG, GIF, WebP",
	},
	storage.KindAudio: {
		storage.ErrTooLarge:    "Audio file too large. Maximum size is 50MB.",
		storage.ErrContentType: "Invalid audio type. Allowed: MP3, WAV, OGG",
	},
}

func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	kind := storage.Kind(c.FormValue("type"))
	if err != nil || kind == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing file or type"})
	}
	if kind != storage.KindImage && kind != storage.KindAudio {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid type. Must be image or audio"})
	}

	f := storage.File{Name: fh.Filename, ContentType: fh.Header.Get(echo.HeaderContentType), Size: fh.Size}
	if err := h.Uploader.Check(kind, f); err != nil {
		metrics.UploadsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": uploadMessage(kind, err)})
	}

	src, err := fh.Open()
	if err != nil {
		h.Log.Error("open upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to upload file"})
	}
	defer src.Close()
	f.Body = src

	url, err := h.Uploader.Upload(c.Request().Context(), kind, f)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(string(kind), "error").Inc()
		h.Log.Error("upload failed", zap.String("type", string(kind)), zap.String("file", fh.Filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to upload file"})
	}
	metrics.UploadsTotal.WithLabelValues(string(kind), "stored").Inc()
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

func uploadMessage(kind storage.Kind, err error) string {
	for target, msg := range uploadMessages[kind] {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Invalid type. Must be image or audio"
}

package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/musician-site/internal/config"
	"github.com/iliyamo/musician-site/internal/storage"
)

type recordingStore struct {
	keys []string
}

func (r *recordingStore) Put(_ context.Context, bucket, key, _ string, _ int64, body io.Reader) error {
	_, _ = io.Copy(io.Discard, body)
	r.keys = append(r.keys, bucket+"/"+key)
	return nil
}

func multipartUpload(t *testing.T, kind, filename, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if kind != "" {
		_ = w.WriteField("type", kind)
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(bytes.Repeat([]byte{'x'}, size))
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, store *recordingStore, kind, filename, contentType string, size int) *httptest.ResponseRecorder {
	t.Helper()
	up := storage.NewUploader(store, config.StorageConfig{
		PublicURL: "https://cdn.example.com", ImageBucket: "images", AudioBucket: "audio",
		MaxImageSize: 10 << 20, MaxAudioSize: 50 << 20,
	})
	h := NewUploadHandler(up, zap.NewNop())
	e := echo.New()
	e.POST("/api/admin/upload", h.Upload)

	body, ct := multipartUpload(t, kind, filename, contentType, size)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUploadRejectsBeforeWriting(t *testing.T) {
	cases := []struct {
		name, kind, file, ct string
		size                 int
		msg                  string
	}{
		{"image too large", "image", "big.jpg", "image/jpeg", 11 << 20, "Image too large. Maximum size is 10MB."},
		{"pdf as image", "image", "doc.pdf", "application/pdf", 100, "Invalid image type. Allowed: JPEG, PNG, GIF, WebP"},
		{"image as audio", "audio", "a.png", "image/png", 100, "Invalid audio type. Allowed: MP3, WAV, OGG"},
		{"unknown type", "video", "v.mp4", "video/mp4", 100, "Invalid type. Must be image or audio"},
		{"missing type", "", "a.png", "image/png", 100, "Missing file or type"},
		{"missing file", "image", "", "", 0, "Missing file or type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &recordingStore{}
			rec := doUpload(t, store, tc.kind, tc.file, tc.ct, tc.size)
			expectError(t, rec, http.StatusBadRequest, tc.msg)
			if len(store.keys) != 0 {
				t.Errorf("store written: %v", store.keys)
			}
		})
	}
}

func TestUploadStoresValidFile(t *testing.T) {
	store := &recordingStore{}
	rec := doUpload(t, store, "audio", "Song.MP3", "audio/mpeg", 2048)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	url, _ := decodeMap(t, rec)["url"].(string)
	if !strings.HasPrefix(url, "https://cdn.example.com/audio/") || !strings.HasSuffix(url, ".mp3") {
		t.Errorf("url = %q", url)
	}
	if len(store.keys) != 1 || !strings.HasPrefix(url, "https://cdn.example.com/"+store.keys[0]) {
		t.Errorf("keys = %v", store.keys)
	}
}

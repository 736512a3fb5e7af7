package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cakeshare/cakeshare-api/internal/httputil"
	"github.com/cakeshare/cakeshare-api/internal/logging"
)

func newTestHandler(t *testing.T, maxBytes int64) (*Handler, string) {
	t.Helper()

	dir := t.TempDir()
	return NewHandler(dir, "/uploads", maxBytes, logging.NewLogger(false)), dir
}

// multipartImage builds a multipart body with a single "image" part carrying
// the given filename, content type and payload.
func multipartImage(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	return &buf, mw.FormDataContentType()
}

func TestUploadImage_Success(t *testing.T) {
	t.Parallel()

	h, dir := newTestHandler(t, 5<<20)

	payload := []byte("fake png bytes")
	body, contentType := multipartImage(t, "cake.png", "image/png", payload)

	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "/uploads/") {
		t.Fatalf("url: got %q, want /uploads/ prefix", resp.URL)
	}
	if !strings.HasSuffix(resp.Filename, ".png") {
		t.Fatalf("filename: got %q, want .png suffix", resp.Filename)
	}
	if strings.Contains(resp.Filename, "cake") {
		t.Fatalf("client filename leaked into stored name: %q", resp.Filename)
	}

	stored, err := os.ReadFile(filepath.Join(dir, resp.Filename))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(stored, payload) {
		t.Fatalf("stored bytes differ from upload")
	}
}

func TestUploadImage_FallbackExtension(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, 5<<20)

	body, contentType := multipartImage(t, "no-extension", "image/jpeg", []byte("jpeg"))

	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp UploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.HasSuffix(resp.Filename, ".jpg") {
		t.Fatalf("filename: got %q, want .jpg fallback extension", resp.Filename)
	}
}

func TestUploadImage_InvalidType(t *testing.T) {
	t.Parallel()

	h, dir := newTestHandler(t, 5<<20)

	body, contentType := multipartImage(t, "notes.txt", "text/plain", []byte("hello"))

	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp httputil.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Code != httputil.CodeInvalidFileType {
		t.Fatalf("code: got %q, want %q", resp.Code, httputil.CodeInvalidFileType)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected upload left %d files on disk", len(entries))
	}
}

func TestUploadImage_TooLarge(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, 64)

	body, contentType := multipartImage(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 128))

	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUploadImage_NoFile(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, 5<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("caption", "no image here"); err != nil {
		t.Fatalf("writing field: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp httputil.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Code != httputil.CodeNoFileUploaded {
		t.Fatalf("code: got %q, want %q", resp.Code, httputil.CodeNoFileUploaded)
	}
}

func TestServeFiles(t *testing.T) {
	t.Parallel()

	h, dir := newTestHandler(t, 5<<20)

	if err := os.WriteFile(filepath.Join(dir, "pic.png"), []byte("png data"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/uploads/pic.png", nil)
	rec := httptest.NewRecorder()
	h.ServeFiles().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "png data" {
		t.Fatalf("body: got %q", rec.Body.String())
	}

	// Path traversal must not escape the uploads dir.
	req = httptest.NewRequest(http.MethodGet, "/uploads/../handler.go", nil)
	rec = httptest.NewRecorder()
	h.ServeFiles().ServeHTTP(rec, req)
	if rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), "package upload") {
		t.Fatalf("path traversal served source code")
	}
}

package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cakeshare/cakeshare-api/internal/httputil"
	"github.com/cakeshare/cakeshare-api/internal/logging"
)

// allowedTypes maps accepted image content types to a fallback extension
// used when the uploaded filename has none.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Handler stores uploaded recipe images on local disk.
type Handler struct {
	dir      string
	baseURL  string
	maxBytes int64
	logger   *logging.Logger
}

func NewHandler(dir, baseURL string, maxBytes int64, logger *logging.Logger) *Handler {
	return &Handler{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// UploadResponse points at the stored image.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadImage accepts a multipart image and stores it under a
// non-guessable generated filename.
// @Summary      Upload a recipe image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file (JPEG, PNG, GIF or WebP, max 5MB)"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} httputil.ErrorResponse "Missing file, wrong type or too large"
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      500 {object} httputil.ErrorResponse
// @Router       /upload-image [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	// Reject oversized bodies before buffering the whole thing.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+4096)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		httputil.RespondErrorWithCode(w, "no image file uploaded or upload error", httputil.CodeNoFileUploaded, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.RespondErrorWithCode(w, "no image file uploaded or upload error", httputil.CodeNoFileUploaded, http.StatusBadRequest)
		return
	}
	defer file.Close()

	fallbackExt, ok := allowedTypes[header.Header.Get("Content-Type")]
	if !ok {
		httputil.RespondErrorWithCode(w, "invalid file type, only JPEG, PNG, GIF, and WebP images are allowed", httputil.CodeInvalidFileType, http.StatusBadRequest)
		return
	}

	if header.Size > h.maxBytes {
		httputil.RespondErrorWithCode(w, "file too large, maximum size is 5MB", httputil.CodeFileTooLarge, http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		logger.Error("failed to create upload dir", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to save uploaded file", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	// The client filename is untrusted; only its extension survives.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = fallbackExt
	}
	filename := fmt.Sprintf("%s_%d%s", uuid.NewString(), time.Now().Unix(), ext)

	dst, err := os.Create(filepath.Join(h.dir, filename))
	if err != nil {
		logger.Error("failed to create upload file", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to save uploaded file", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error("failed to write upload file", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to save uploaded file", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("image uploaded", "filename", filename, "size", header.Size)

	httputil.RespondJSON(w, UploadResponse{
		URL:      h.baseURL + "/" + filename,
		Filename: filename,
	}, http.StatusOK)
}

// ServeFiles returns a handler that serves the uploads directory.
func (h *Handler) ServeFiles() http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.dir)))
}

package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/areeb193/matraders-backend-sub001/config"
)

// Image types accepted by the generic upload store.
var uploadTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type UploadHandler struct{}

type uploadedFile struct {
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
	Type      string `json:"type,omitempty"`
	CreatedAt any    `json:"createdAt,omitempty"`
}

// Save stores one or more uploaded files. The whole batch is validated
// before anything is written; one bad file rejects the request.
func (h *UploadHandler) Save(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		jsonError(c, http.StatusBadRequest, "No files uploaded")
		return
	}

	for _, file := range files {
		if msg := validateUpload(file); msg != "" {
			jsonError(c, http.StatusBadRequest, msg)
			return
		}
	}

	uploadDir := config.GetUploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}

	saved := make([]uploadedFile, 0, len(files))
	for _, file := range files {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			jsonError(c, http.StatusInternalServerError, err.Error())
			return
		}
		saved = append(saved, uploadedFile{
			Filename: filename,
			URL:      "/uploads/" + filename,
			Size:     file.Size,
			Type:     file.Header.Get("Content-Type"),
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Files uploaded successfully",
		"files":   saved,
	})
}

func validateUpload(file *multipart.FileHeader) string {
	contentType := file.Header.Get("Content-Type")
	if !uploadTypes[contentType] {
		return fmt.Sprintf("Invalid file type: %s. Allowed: jpeg, png, gif, webp, svg", contentType)
	}
	if file.Size > maxImageSize {
		return fmt.Sprintf("File too large: %s. Max size: 5MB", file.Filename)
	}
	return ""
}

// List enumerates the upload directory with size and creation time.
func (h *UploadHandler) List(c *gin.Context) {
	uploadDir := config.GetUploadDir()
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"files": []uploadedFile{}})
			return
		}
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}

	files := make([]uploadedFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, uploadedFile{
			Filename:  entry.Name(),
			URL:       "/uploads/" + entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// Info returns metadata for one stored file.
func (h *UploadHandler) Info(c *gin.Context) {
	filename := c.Param("filename")
	if !safeFilename(filename) {
		jsonError(c, http.StatusBadRequest, "Invalid filename")
		return
	}
	info, err := os.Stat(filepath.Join(config.GetUploadDir(), filename))
	if err != nil {
		jsonError(c, http.StatusNotFound, "File not found")
		return
	}
	c.JSON(http.StatusOK, uploadedFile{
		Filename:  filename,
		URL:       "/uploads/" + filename,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	})
}

// Delete removes a stored file. Missing files report 404, so a repeated
// delete is answered with NotFound rather than succeeding silently.
func (h *UploadHandler) Delete(c *gin.Context) {
	filename := c.Param("filename")
	if !safeFilename(filename) {
		jsonError(c, http.StatusBadRequest, "Invalid filename")
		return
	}
	target := filepath.Join(config.GetUploadDir(), filename)
	if _, err := os.Stat(target); err != nil {
		jsonError(c, http.StatusNotFound, "File not found")
		return
	}
	if err := os.Remove(target); err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("File %s deleted successfully", filename)})
}

// safeFilename rejects path traversal sequences before the name is
// resolved against the upload directory.
func safeFilename(name string) bool {
	return name != "" &&
		!strings.Contains(name, "..") &&
		!strings.Contains(name, "/") &&
		!strings.Contains(name, "\\")
}

package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/infrastructure/storage"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/errors"
	"voltmarket/pkg/logger"
	"voltmarket/pkg/response"
)

const maxDocumentSize = 10 << 20 // 10 MB

var allowedDocumentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

type DocumentHandler struct {
	userUseCase *usecase.UserUseCase
	storage     *storage.CloudStorageClient
}

func NewDocumentHandler(userUseCase *usecase.UserUseCase, storageClient *storage.CloudStorageClient) *DocumentHandler {
	return &DocumentHandler{
		userUseCase: userUseCase,
		storage:     storageClient,
	}
}

// Upload stores a verification document and records its descriptor on the
// profile. Recording the descriptor is what advances the approval lifecycle.
func (h *DocumentHandler) Upload(c echo.Context) error {
	uid := c.Get("uid").(string)

	category := c.FormValue("category")
	if category == "" {
		category = "business_license"
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("A file is required", err))
	}
	if fileHeader.Size > maxDocumentSize {
		return response.Error(c, errors.BadRequest("File exceeds the 10 MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedDocumentTypes[contentType] {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG and PDF documents are accepted", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	uploaded, err := h.storage.UploadDocument(c.Request().Context(), file, contentType, uid, category)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store document", err))
	}

	account, err := h.userUseCase.AddDocument(c.Request().Context(), uid, entity.Document{
		ID:          uuid.New().String(),
		Category:    category,
		StoragePath: uploaded.ObjectName,
		URL:         uploaded.URL,
		FileType:    uploaded.FileType,
		UploadedAt:  time.Now(),
	})
	if err != nil {
		// The profile write failed; don't leave the orphaned object behind.
		if delErr := h.storage.DeleteObject(c.Request().Context(), uploaded.ObjectName); delErr != nil {
			logger.Warn("Failed to clean up orphaned object %s: %v", uploaded.ObjectName, delErr)
		}
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"documents":           account.Documents,
		"approval_status":     account.BusinessInfo.Status,
		"is_profile_complete": account.IsProfileComplete(),
	})
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	documentID := c.Param("id")

	account, removed, err := h.userUseCase.RemoveDocument(c.Request().Context(), uid, documentID)
	if err != nil {
		return response.Error(c, err)
	}

	// Best effort; a dangling object is invisible to users.
	if err := h.storage.DeleteObject(c.Request().Context(), removed.StoragePath); err != nil {
		logger.Warn("Failed to delete stored object %s: %v", removed.StoragePath, err)
	}

	return response.Success(c, map[string]interface{}{
		"documents": account.Documents,
	})
}

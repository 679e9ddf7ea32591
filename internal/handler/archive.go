package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seiflotfy/huffpack"
	"github.com/seiflotfy/huffpack/internal/service"
)

// maxUploadBytes caps request bodies on the compress and decompress routes.
const maxUploadBytes = 32 << 20

type ArchiveHandler struct {
	svc *service.ArchiveService
}

func NewArchiveHandler(s *service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{svc: s}
}

// readBody reads the request body capped at maxUploadBytes, writing the error
// response itself when reading fails.
func (h *ArchiveHandler) readBody(c *gin.Context) ([]byte, bool) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

// Create compresses the request body and stores the result.
func (h *ArchiveHandler) Create(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	a, err := h.svc.Compress(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetByID returns a stored archive's compressed bytes.
func (h *ArchiveHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	a, ok := h.svc.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive not found"})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", a.Data)
}

// Decompress inflates the archive in the request body.
func (h *ArchiveHandler) Decompress(c *gin.Context) {
	archive, ok := h.readBody(c)
	if !ok {
		return
	}
	data, err := h.svc.Decompress(archive)
	if err != nil {
		var ferr huffpack.FormatError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ferr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}

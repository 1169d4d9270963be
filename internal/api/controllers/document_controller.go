package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"wingman/internal/models/response_models"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

// 10 MB upload ceiling, matching the client-side limit.
const maxDocumentSize = 10 << 20

type DocumentController struct {
	documentService services.DocumentServiceInterface
}

func NewDocumentController(documentService services.DocumentServiceInterface) *DocumentController {
	return &DocumentController{documentService: documentService}
}

func (d *DocumentController) ParseHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file form field is required")
		return
	}
	if fileHeader.Size > maxDocumentSize {
		utils.RespondError(c, http.StatusBadRequest, "File exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	content, err := d.documentService.ExtractText(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.DocumentParseResponse{Content: content})
}

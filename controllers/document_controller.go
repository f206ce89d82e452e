package controllers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/pkg/resp"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type DocumentController struct {
	service   *services.DocumentService
	uploadDir string
}

func NewDocumentController(s *services.DocumentService, uploadDir string) *DocumentController {
	return &DocumentController{service: s, uploadDir: uploadDir}
}

// GET /loads/:id/documents
func (ctl *DocumentController) List(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	docs, err := ctl.service.ListDocuments(utils.CurrentCapabilities(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, docs)
}

// POST /loads/:id/documents — multipart {file}
func (ctl *DocumentController) Upload(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	userID := utils.CurrentUserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file part required")
		return
	}

	filename := fmt.Sprintf("load_%d_%d%s", id, time.Now().UnixNano(), filepath.Ext(file.Filename))
	savePath := filepath.Join(ctl.uploadDir, "documents", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	doc, err := ctl.service.AttachDocument(
		utils.CurrentCapabilities(c), id, userID,
		savePath, file.Filename, file.Header.Get("Content-Type"), file.Size,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, doc)
}

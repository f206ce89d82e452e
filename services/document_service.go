package services

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type DocumentService struct {
	repo     *repository.DocumentRepository
	loadRepo *repository.LoadRepository
}

func NewDocumentService(repo *repository.DocumentRepository, loadRepo *repository.LoadRepository) *DocumentService {
	return &DocumentService{repo: repo, loadRepo: loadRepo}
}

// AttachDocument records an uploaded file against the load. The controller
// has already written the file under the upload dir; this persists the row.
func (s *DocumentService) AttachDocument(caps utils.Capabilities, loadID, userID uint, filePath, originalName, contentType string, size int64) (*entity.Document, error) {
	if !caps.Allow(utils.PermDocumentsUpload) {
		return nil, ErrForbidden
	}
	if filePath == "" {
		return nil, FieldErrors{"file": "required"}
	}

	exists, err := s.loadRepo.Exists(loadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	doc := &entity.Document{
		LoadID:       loadID,
		FilePath:     filePath,
		OriginalName: originalName,
		ContentType:  contentType,
		SizeBytes:    size,
		UploadedByID: userID,
	}
	if err := s.repo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) ListDocuments(caps utils.Capabilities, loadID uint) ([]entity.Document, error) {
	if !caps.Allow(utils.PermDocumentsView) {
		return nil, ErrForbidden
	}
	exists, err := s.loadRepo.Exists(loadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.repo.FindByLoad(loadID)
}

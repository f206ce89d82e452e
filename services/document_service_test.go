package services

import (
	"errors"
	"testing"

	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

func TestAttachAndListDocuments(t *testing.T) {
	db := openTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db), repository.NewLoadRepository(db))
	loadSvc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, loadSvc, broker.ID)

	doc, err := svc.AttachDocument(fullCaps(), load.ID, 1,
		"uploads/documents/load_1_1.pdf", "rate_confirmation.pdf", "application/pdf", 2048)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if doc.ID == 0 {
		t.Error("document should get an id")
	}

	docs, err := svc.ListDocuments(fullCaps(), load.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("want 1 document, got %d", len(docs))
	}
	if docs[0].OriginalName != "rate_confirmation.pdf" {
		t.Errorf("original name: got %q", docs[0].OriginalName)
	}
	if docs[0].LoadID != load.ID {
		t.Errorf("load scope: got %d", docs[0].LoadID)
	}
}

func TestAttachDocumentUnknownLoad(t *testing.T) {
	db := openTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db), repository.NewLoadRepository(db))

	_, err := svc.AttachDocument(fullCaps(), 404, 1, "uploads/x.pdf", "x.pdf", "application/pdf", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttachDocumentForbidden(t *testing.T) {
	db := openTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db), repository.NewLoadRepository(db))

	_, err := svc.AttachDocument(utils.Capabilities{"documents.view": true}, 1, 1, "uploads/x.pdf", "x.pdf", "application/pdf", 1)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

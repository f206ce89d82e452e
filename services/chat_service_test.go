package services

import (
	"errors"
	"testing"
	"time"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

func TestPostAndListMessages(t *testing.T) {
	db := openTestDB(t)
	loadRepo := repository.NewLoadRepository(db)
	svc := NewChatService(repository.NewChatRepository(db), loadRepo)
	loadSvc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, loadSvc, broker.ID)

	first, err := svc.PostMessage(fullCaps(), load.ID, 1, "picking up at 9am")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.PostMessage(fullCaps(), load.ID, 2, "copy that")
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	msgs, err := svc.ListMessages(fullCaps(), load.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("want 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != first.ID || msgs[1].ID != second.ID {
		t.Errorf("messages out of order: %d then %d", msgs[0].ID, msgs[1].ID)
	}
	if msgs[1].Message != "copy that" {
		t.Errorf("body: got %q", msgs[1].Message)
	}
}

func TestPostMessageUnknownLoad(t *testing.T) {
	db := openTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewLoadRepository(db))

	if _, err := svc.PostMessage(fullCaps(), 404, 1, "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostMessageBlank(t *testing.T) {
	db := openTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewLoadRepository(db))
	loadSvc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, loadSvc, broker.ID)

	_, err := svc.PostMessage(fullCaps(), load.ID, 1, "   ")
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fields["message"]; !ok {
		t.Errorf("error should name message, got %v", fields)
	}
}

func TestChatIndependentOfStage(t *testing.T) {
	db := openTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewLoadRepository(db))
	loadSvc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, loadSvc, broker.ID)

	// walk the load to the terminal stage, chat must still work
	current, err := loadSvc.PatchStage(fullCaps(), load.ID, load.Version, &LoadPatch{
		LoadPay: f64(1), TotalPay: f64(1), PerMile: f64(1), TotalMiles: f64(1),
	})
	if err != nil {
		t.Fatalf("fill pricing: %v", err)
	}
	for i := 1; i < len(entity.StageLabels()); i++ {
		if current, err = loadSvc.Advance(fullCaps(), current.ID, current.Version); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if _, err := svc.PostMessage(fullCaps(), load.ID, 1, "delivered clean"); err != nil {
		t.Errorf("post at IN YARD: %v", err)
	}
}

func TestChatForbidden(t *testing.T) {
	db := openTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewLoadRepository(db))

	if _, err := svc.PostMessage(utils.Capabilities{"chat.view": true}, 1, 1, "hi"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.ListMessages(utils.Capabilities{}, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

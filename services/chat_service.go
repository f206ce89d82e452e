package services

import (
	"strings"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

type ChatService struct {
	repo     *repository.ChatRepository
	loadRepo *repository.LoadRepository
}

func NewChatService(repo *repository.ChatRepository, loadRepo *repository.LoadRepository) *ChatService {
	return &ChatService{repo: repo, loadRepo: loadRepo}
}

// PostMessage appends to the load's transcript. Works at any stage; the chat
// channel is independent of the workflow.
func (s *ChatService) PostMessage(caps utils.Capabilities, loadID, userID uint, text string) (*entity.ChatMessage, error) {
	if !caps.Allow(utils.PermChatPost) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(text) == "" {
		return nil, FieldErrors{"message": "required"}
	}

	exists, err := s.loadRepo.Exists(loadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	msg := &entity.ChatMessage{
		LoadID:  loadID,
		Message: text,
		UserID:  userID,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns the transcript in chronological order.
func (s *ChatService) ListMessages(caps utils.Capabilities, loadID uint) ([]entity.ChatMessage, error) {
	if !caps.Allow(utils.PermChatView) {
		return nil, ErrForbidden
	}
	exists, err := s.loadRepo.Exists(loadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.repo.FindMessagesByLoad(loadID)
}

package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"nannyhub/models"
	"nannyhub/ws"
)

type ContactService struct {
	users    UserStore
	requests ContactRequestStore
	messages MessageStore
	email    *EmailService
}

// email may be nil; notification is best-effort.
func NewContactService(users UserStore, requests ContactRequestStore, messages MessageStore, email *EmailService) *ContactService {
	return &ContactService{users: users, requests: requests, messages: messages, email: email}
}

func (s *ContactService) Create(ctx context.Context, user *models.User, req models.ContactRequestRequest) (*models.ContactRequest, error) {
	if user.Role != models.RoleFamily {
		return nil, models.ForbiddenError("only families can contact")
	}

	message := strings.TrimSpace(req.Message)
	if req.NannyID == 0 || message == "" {
		return nil, models.ValidationError("nanny_id and message are required")
	}

	nanny, err := s.users.FindByID(ctx, req.NannyID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if nanny == nil || nanny.Role != models.RoleNanny {
		return nil, models.NotFoundError("nanny not found")
	}

	request := &models.ContactRequest{
		FamilyID: user.ID,
		NannyID:  nanny.ID,
		Message:  message,
		Status:   models.ContactStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	if s.email != nil {
		go func(to, from, body string) {
			if err := s.email.SendContactRequestEmail(to, from, body); err != nil {
				log.Printf("contact request notification failed: %v", err)
			}
		}(nanny.Email, user.Email, message)
	}

	return request, nil
}

func (s *ContactService) ListForUser(ctx context.Context, user *models.User) ([]models.ContactRequestThread, error) {
	return s.requests.ListForUser(ctx, user.ID)
}

// Delete removes a thread the user participates in. Non-participants get
// the same "not found" as an absent id.
func (s *ContactService) Delete(ctx context.Context, user *models.User, id int) error {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NotFoundError("not found")
		}
		return err
	}
	if !isParticipant(request, user) {
		return models.NotFoundError("not found")
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NotFoundError("not found")
		}
		return err
	}
	return nil
}

func (s *ContactService) CreateMessage(ctx context.Context, user *models.User, req models.MessageRequest) (*models.Message, error) {
	body := strings.TrimSpace(req.Body)
	if req.ContactRequestID == 0 || body == "" {
		return nil, models.ValidationError("contact_request_id and body are required")
	}

	request, err := s.requests.FindByID(ctx, req.ContactRequestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NotFoundError("not found")
		}
		return nil, err
	}
	if !isParticipant(request, user) {
		return nil, models.NotFoundError("not found")
	}

	message := &models.Message{
		ContactRequestID: request.ID,
		SenderID:         user.ID,
		SenderEmail:      user.Email,
		Body:             body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	ws.NotifyThreadMessage(message.ContactRequestID, message)

	return message, nil
}

func (s *ContactService) ListMessages(ctx context.Context, user *models.User, contactRequestID int) ([]models.Message, error) {
	if contactRequestID == 0 {
		return nil, models.ValidationError("contact_request_id is required")
	}

	request, err := s.requests.FindByID(ctx, contactRequestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NotFoundError("not found")
		}
		return nil, err
	}
	if !isParticipant(request, user) {
		return nil, models.NotFoundError("not found")
	}

	return s.messages.ListByContactRequest(ctx, contactRequestID)
}

// LastMessage returns nil without error when the user has no messages yet.
func (s *ContactService) LastMessage(ctx context.Context, user *models.User) (*models.Message, error) {
	message, err := s.messages.LastForUser(ctx, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return message, err
}

func isParticipant(request *models.ContactRequest, user *models.User) bool {
	return request.FamilyID == user.ID || request.NannyID == user.ID
}

package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"nannyhub/models"
)

// memStore backs all store interfaces for service tests.
type memStore struct {
	mu sync.Mutex

	nextID   int
	users    map[int]*models.User
	sessions map[string]int
	nannies  map[int]*models.NannyProfile
	families map[int]*models.FamilyProfile
	requests map[int]*models.ContactRequest
	messages []*models.Message
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int]*models.User),
		sessions: make(map[string]int),
		nannies:  make(map[int]*models.NannyProfile),
		families: make(map[int]*models.FamilyProfile),
		requests: make(map[int]*models.ContactRequest),
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.ErrDuplicate
		}
	}
	user.ID = m.id()
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

type memSessionStore struct{ m *memStore }

func (s memSessionStore) Create(ctx context.Context, session *models.Session) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	session.ID = s.m.id()
	s.m.sessions[session.Token] = session.UserID
	return nil
}

func (s memSessionStore) DeleteByToken(ctx context.Context, token string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.sessions, token)
	return nil
}

func (s memSessionStore) FindUserByToken(ctx context.Context, token string) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	userID, ok := s.m.sessions[token]
	if !ok {
		return nil, models.ErrNotFound
	}
	user, ok := s.m.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

type memNannyStore struct{ m *memStore }

func (s memNannyStore) Upsert(ctx context.Context, profile *models.NannyProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if existing, ok := s.m.nannies[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = s.m.id()
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	s.m.nannies[profile.UserID] = &stored
	return nil
}

func (s memNannyStore) FindByID(ctx context.Context, id int) (*models.NannyProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, profile := range s.m.nannies {
		if profile.ID == id {
			return profile, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s memNannyStore) FindByUserID(ctx context.Context, userID int) (*models.NannyProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	profile, ok := s.m.nannies[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return profile, nil
}

func (s memNannyStore) List(ctx context.Context, filter models.NannyProfileFilter) ([]models.NannyProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	results := []models.NannyProfile{}
	for _, profile := range s.m.nannies {
		if filter.City != "" && !strings.EqualFold(filter.City, profile.City) {
			continue
		}
		if filter.Zip != "" && filter.Zip != profile.Zip {
			continue
		}
		if filter.MinExperience != nil && profile.YearsExperience < *filter.MinExperience {
			continue
		}
		if filter.MaxRate != nil && profile.PreferredRate > *filter.MaxRate {
			continue
		}
		results = append(results, *profile)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].UpdatedAt.Equal(results[j].UpdatedAt) {
			return results[i].UpdatedAt.After(results[j].UpdatedAt)
		}
		return results[i].ID > results[j].ID
	})
	return results, nil
}

type memFamilyStore struct{ m *memStore }

func (s memFamilyStore) Upsert(ctx context.Context, profile *models.FamilyProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if existing, ok := s.m.families[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = s.m.id()
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	s.m.families[profile.UserID] = &stored
	return nil
}

func (s memFamilyStore) FindByUserID(ctx context.Context, userID int) (*models.FamilyProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	profile, ok := s.m.families[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return profile, nil
}

type memContactStore struct{ m *memStore }

func (s memContactStore) Create(ctx context.Context, request *models.ContactRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	request.ID = s.m.id()
	request.CreatedAt = time.Now()
	stored := *request
	s.m.requests[request.ID] = &stored
	return nil
}

func (s memContactStore) FindByID(ctx context.Context, id int) (*models.ContactRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	request, ok := s.m.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return request, nil
}

func (s memContactStore) ListForUser(ctx context.Context, userID int) ([]models.ContactRequestThread, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	threads := []models.ContactRequestThread{}
	for _, request := range s.m.requests {
		if request.FamilyID != userID && request.NannyID != userID {
			continue
		}
		thread := models.ContactRequestThread{ContactRequest: *request}
		if nanny, ok := s.m.users[request.NannyID]; ok {
			thread.NannyName = nanny.Email
		}
		if family, ok := s.m.users[request.FamilyID]; ok {
			thread.FamilyName = family.Email
		}
		threads = append(threads, thread)
	}
	sort.Slice(threads, func(i, j int) bool { return threads[i].ID > threads[j].ID })
	return threads, nil
}

func (s memContactStore) Delete(ctx context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.requests[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.m.requests, id)
	return nil
}

type memMessageStore struct{ m *memStore }

func (s memMessageStore) Create(ctx context.Context, message *models.Message) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	message.ID = s.m.id()
	message.CreatedAt = time.Now()
	stored := *message
	s.m.messages = append(s.m.messages, &stored)
	return nil
}

func (s memMessageStore) ListByContactRequest(ctx context.Context, contactRequestID int) ([]models.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	results := []models.Message{}
	for _, message := range s.m.messages {
		if message.ContactRequestID == contactRequestID {
			results = append(results, *message)
		}
	}
	return results, nil
}

func (s memMessageStore) LastForUser(ctx context.Context, userID int) (*models.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := len(s.m.messages) - 1; i >= 0; i-- {
		message := s.m.messages[i]
		request, ok := s.m.requests[message.ContactRequestID]
		if !ok {
			continue
		}
		if request.FamilyID == userID || request.NannyID == userID {
			return message, nil
		}
	}
	return nil, models.ErrNotFound
}

package service

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/mailer"
)

// ---------------------------------------------------------------------------
// mockContactRepository
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context) ([]*model.ContactMessage, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*model.ContactMessage{}, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockSender records every message and fails for configured recipients.
// ---------------------------------------------------------------------------

type mockSender struct {
	mu       sync.Mutex
	sent     []mailer.Message
	failFor  map[string]error
	sendFunc func(ctx context.Context, msg mailer.Message) error
}

func (s *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	if s.sendFunc != nil {
		if err := s.sendFunc(ctx, msg); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	if err, ok := s.failFor[msg.To]; ok {
		return err
	}
	return nil
}

func (s *mockSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

// ---------------------------------------------------------------------------
// mockProjectRepository is an in-memory ProjectRepository
// ---------------------------------------------------------------------------

type mockProjectRepository struct {
	projects  map[int64]*model.Project
	nextID    int64
	createErr error
	updateErr error
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[int64]*model.Project), nextID: 1}
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	out := make([]*model.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, id int64, patch *model.ProjectPatch) (*model.Project, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	cp := *p
	return &cp, nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id int64) error {
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepository) UpdateImageURL(ctx context.Context, id int64, url *string) error {
	p, ok := m.projects[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ImageURL = url
	return nil
}

// ---------------------------------------------------------------------------
// memStorage is an in-memory storage.Storage
// ---------------------------------------------------------------------------

type memStorage struct {
	objects map[string][]byte
	saveErr error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

const memPrefix = "mem://"

func (s *memStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	s.objects[key] = b
	return memPrefix + key, nil
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memStorage) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, memPrefix)
	return key, ok && key != ""
}

func (s *memStorage) Driver() string { return "mem" }

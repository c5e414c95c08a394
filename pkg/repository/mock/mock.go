package mock

import (
	"context"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo *mockUserRepo
	ChatRepo *mockChatRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo: &mockUserRepo{},
		ChatRepo: &mockChatRepo{},
	}
}

type mockUserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *u
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.Stored == nil {
		return nil, nil
	}
	return []models.User{*m.Stored}, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id int64, p *models.UserPatch) error {
	return nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	if m.Stored != nil && m.Stored.ID == id {
		m.Stored = nil
	}
	return nil
}

type mockChatRepo struct {
	Stored    *models.ChatMessage
	CreateErr error
	UpdateErr error
}

func (m *mockChatRepo) CreateChat(ctx context.Context, c *models.ChatMessage) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *c
	m.Stored = &stored
	return nil
}

func (m *mockChatRepo) GetChat(ctx context.Context, id string) (*models.ChatMessage, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockChatRepo) ListChats(ctx context.Context) ([]models.ChatMessage, error) {
	if m.Stored == nil {
		return nil, nil
	}
	return []models.ChatMessage{*m.Stored}, nil
}

func (m *mockChatRepo) ListChatsByConversation(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	if m.Stored == nil || m.Stored.ConversationID == nil || *m.Stored.ConversationID != conversationID {
		return nil, nil
	}
	return []models.ChatMessage{*m.Stored}, nil
}

func (m *mockChatRepo) UpdateChat(ctx context.Context, id string, p *models.ChatPatch) error {
	return m.UpdateErr
}

func (m *mockChatRepo) DeleteChat(ctx context.Context, id string) error {
	if m.Stored != nil && m.Stored.ID == id {
		m.Stored = nil
	}
	return nil
}

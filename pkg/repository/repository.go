package repository

import (
	"context"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

// Repository interfaces for the four marketplace resources. These are the
// public contracts consumers should depend on; concrete implementations live
// under internal/. Get methods return (nil, nil) on a missing row so callers
// can distinguish "not found" from a store failure.

type ChatRepo interface {
	CreateChat(ctx context.Context, m *models.ChatMessage) error
	GetChat(ctx context.Context, id string) (*models.ChatMessage, error)
	ListChats(ctx context.Context) ([]models.ChatMessage, error)
	ListChatsByConversation(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	UpdateChat(ctx context.Context, id string, p *models.ChatPatch) error
	DeleteChat(ctx context.Context, id string) error
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, p *models.OrderPatch) error
	DeleteOrder(ctx context.Context, id string) error
}

type ServiceRepo interface {
	CreateService(ctx context.Context, s *models.Service) (int64, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	UpdateService(ctx context.Context, id int64, p *models.ServicePatch) error
	DeleteService(ctx context.Context, id int64) error
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, p *models.UserPatch) error
	DeleteUser(ctx context.Context, id int64) error
}

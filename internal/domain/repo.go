package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

type OrderRepository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, orderID string) error
	FindByReference(ctx context.Context, reference, terminalID string) ([]Order, error)
	Terminals(ctx context.Context) ([]Terminal, error)
}

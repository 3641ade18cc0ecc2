package service

import "context"

//go:generate mockgen -source=tx.go -destination=./tx_manager_mock.go -package=service
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

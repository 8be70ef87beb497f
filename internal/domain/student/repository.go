package student

import "context"

type Repository interface {
	Create(ctx context.Context, s Student) (*Student, error)
	GetByID(ctx context.Context, id int64) (*Student, error)
	GetByUserID(ctx context.Context, userID int64) (*Student, error)
	Update(ctx context.Context, s Student) (*Student, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Student, error)
}

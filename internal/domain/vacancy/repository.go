package vacancy

import "context"

type Repository interface {
	Create(ctx context.Context, v Vacancy) (*Vacancy, error)
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	Update(ctx context.Context, v Vacancy) (*Vacancy, error)
	SetActive(ctx context.Context, id int64, active bool) error
	ListAll(ctx context.Context) ([]Vacancy, error)
	ListActive(ctx context.Context) ([]Vacancy, error)
}

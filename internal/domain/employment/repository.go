package employment

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) (*Report, error)
	ListAll(ctx context.Context) ([]ReportView, error)
}

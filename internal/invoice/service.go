package invoice

import "context"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoice(ctx context.Context, id int64, amt float64, paid bool) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CompCode string
	Amt      float64
}

// Create inserts a new invoice in the Unpaid state. paid, paid_date and
// add_date are owned by the schema defaults, never by the caller.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	inv := &Invoice{
		CompCode: params.CompCode,
		Amt:      params.Amt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// Update writes amt and paid, deriving paid_date from the stored value
// per NextPaidDate. The read and write happen inside one repository
// transaction so a concurrent update cannot be lost.
func (s *Service) Update(ctx context.Context, id int64, amt float64, paid bool) (*Invoice, error) {
	return s.repo.UpdateInvoice(ctx, id, amt, paid)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}

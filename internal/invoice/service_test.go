package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stbaker/biztime/internal/invoice"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    invoice.CreateParams
		setupMock func(m *invoice.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "StartsUnpaid",
			params: invoice.CreateParams{CompCode: "apple", Amt: 100},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						assert.False(t, inv.Paid)
						assert.Nil(t, inv.PaidDate)

						inv.ID = 1
						inv.AddDate = time.Now()
						return nil
					})
			},
		},
		{
			name:   "UnknownCompany",
			params: invoice.CreateParams{CompCode: "nope", Amt: 100},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(invoice.ErrUnknownCompany)
			},
			wantErr: invoice.ErrUnknownCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.CompCode, got.CompCode)
			assert.Equal(t, tt.params.Amt, got.Amt)
			assert.False(t, got.Paid)
			assert.Nil(t, got.PaidDate)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		GetInvoice(gomock.Any(), int64(7)).
		Return(nil, invoice.ErrNotFound)

	svc := invoice.NewService(repo)
	_, err := svc.Get(context.Background(), 7)

	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	now := time.Now()

	type testCase struct {
		name      string
		setupMock func(m *invoice.MockRepository)
		wantErr   error
		wantPaid  bool
		wantDate  *time.Time
	}

	tests := []testCase{
		{
			name: "MarksPaid",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					UpdateInvoice(gomock.Any(), int64(1), 1000.0, true).
					Return(&invoice.Invoice{ID: 1, CompCode: "apple", Amt: 1000, Paid: true, PaidDate: &now}, nil)
			},
			wantPaid: true,
			wantDate: &now,
		},
		{
			name: "NotFound",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					UpdateInvoice(gomock.Any(), int64(1), 1000.0, true).
					Return(nil, invoice.ErrNotFound)
			},
			wantErr: invoice.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := invoice.NewService(repo)
			got, err := svc.Update(context.Background(), 1, 1000, true)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPaid, got.Paid)
			assert.Equal(t, tt.wantDate, got.PaidDate)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteInvoice(gomock.Any(), int64(1)).
		Return(nil)

	svc := invoice.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), 1))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		ListInvoices(gomock.Any()).
		Return([]*invoice.Invoice{
			{ID: 1, CompCode: "apple"},
			{ID: 2, CompCode: "ibm"},
		}, nil)

	svc := invoice.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_List_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		ListInvoices(gomock.Any()).
		Return(nil, errors.New("db error"))

	svc := invoice.NewService(repo)
	_, err := svc.List(context.Background())

	assert.Error(t, err)
}

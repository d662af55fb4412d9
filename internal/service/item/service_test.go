package item_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
	mock_repository "github.com/Astemirdum/rental-service/internal/repository/mocks"
	"github.com/Astemirdum/rental-service/internal/service/item"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestService_Create(t *testing.T) {
	t.Parallel()

	req := model.CreateItemRequest{Name: "Дрель", Description: "Аккумуляторная дрель", Available: boolPtr(true)}

	type mockBehavior func(repo *mock_repository.MockItemRepository, users *mock_repository.MockUserRepository)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		ownerID      int64
		want         model.Item
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(repo *mock_repository.MockItemRepository, users *mock_repository.MockUserRepository) {
				users.EXPECT().Exists(context.Background(), int64(2)).Return(true, nil)
				repo.EXPECT().Create(context.Background(), req, int64(2)).
					Return(model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: true, OwnerID: 2}, nil)
			},
			ownerID: 2,
			want:    model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: true, OwnerID: 2},
		},
		{
			name: "err. owner not found",
			mockBehavior: func(repo *mock_repository.MockItemRepository, users *mock_repository.MockUserRepository) {
				users.EXPECT().Exists(context.Background(), int64(99)).Return(false, nil)
			},
			ownerID: 99,
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockItemRepository(c)
			users := mock_repository.NewMockUserRepository(c)
			svc := item.NewService(repo, users, zap.NewExample().Named("test"))

			tt.mockBehavior(repo, users)
			got, err := svc.Create(context.Background(), req, tt.ownerID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	drill := model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: true, OwnerID: 2}

	type input struct {
		itemID  int64
		ownerID int64
		req     model.UpdateItemRequest
	}
	type mockBehavior func(repo *mock_repository.MockItemRepository, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		want         model.Item
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(repo *mock_repository.MockItemRepository, inp input) {
				repo.EXPECT().GetByID(context.Background(), inp.itemID).Return(drill, nil)
				repo.EXPECT().Update(context.Background(), inp.itemID, inp.req).
					Return(model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: false, OwnerID: 2}, nil)
			},
			input: input{itemID: 7, ownerID: 2, req: model.UpdateItemRequest{Available: boolPtr(false)}},
			want:  model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: false, OwnerID: 2},
		},
		{
			name: "ok. empty update returns item unchanged",
			mockBehavior: func(repo *mock_repository.MockItemRepository, inp input) {
				repo.EXPECT().GetByID(context.Background(), inp.itemID).Return(drill, nil)
			},
			input: input{itemID: 7, ownerID: 2, req: model.UpdateItemRequest{}},
			want:  drill,
		},
		{
			name: "err. not the owner",
			mockBehavior: func(repo *mock_repository.MockItemRepository, inp input) {
				repo.EXPECT().GetByID(context.Background(), inp.itemID).Return(drill, nil)
			},
			input:   input{itemID: 7, ownerID: 3, req: model.UpdateItemRequest{Name: strPtr("Перфоратор")}},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "err. item not found",
			mockBehavior: func(repo *mock_repository.MockItemRepository, inp input) {
				repo.EXPECT().GetByID(context.Background(), inp.itemID).Return(model.Item{}, errs.ErrNotFound)
			},
			input:   input{itemID: 44, ownerID: 2, req: model.UpdateItemRequest{Name: strPtr("Перфоратор")}},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockItemRepository(c)
			users := mock_repository.NewMockUserRepository(c)
			svc := item.NewService(repo, users, zap.NewExample().Named("test"))

			tt.mockBehavior(repo, tt.input)
			got, err := svc.Update(context.Background(), tt.input.itemID, tt.input.ownerID, tt.input.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

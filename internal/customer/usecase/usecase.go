package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/pkg/validate"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	tx     *store.TxManager
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, tx *store.TxManager, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		tx:     tx,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &model.Customer{
		BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:           in.Name,
		Phone:          validate.Optional(in.Phone),
		Email:          validate.Optional(in.Email),
		Discount:       in.Discount,
		TotalPurchases: decimal.Zero,
	}

	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		return uc.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.String("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	in := *input
	in.Name = validate.Trim(in.Name)
	in.Phone = validate.Trim(in.Phone)
	in.Email = validate.Trim(in.Email)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	var updated *model.Customer
	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		c, err := uc.repo.FindByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if c == nil {
			return apperror.NotFound("customer", in.ID)
		}

		if in.Name != nil {
			c.Name = *in.Name
		}
		if v := validate.OptionalPtr(in.Phone); v != nil {
			c.Phone = *v
		}
		if v := validate.OptionalPtr(in.Email); v != nil {
			if *v != nil {
				if err := validate.Var(**v, "email", "email"); err != nil {
					return err
				}
			}
			c.Email = *v
		}
		if in.Discount != nil {
			c.Discount = *in.Discount
		}
		if in.TotalPurchases != nil {
			c.TotalPurchases = *in.TotalPurchases
		}
		c.UpdatedAt = time.Now().UTC()

		if err := uc.repo.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

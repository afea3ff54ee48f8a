package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/modules/model"
)

type FundingRepo interface {
	Create(ctx context.Context, f *model.ProjectFunding) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectFunding, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f FundingFilter) ([]*model.ProjectFunding, error)
	AddTransaction(ctx context.Context, tx *model.FundingTransaction) error
	ListTransactions(ctx context.Context, f TransactionFilter) ([]*model.FundingTransaction, error)
}

type fundingRepo struct{ db *gorm.DB }

func NewFundingRepo(db *gorm.DB) FundingRepo {
	return &fundingRepo{db: db}
}

func (r *fundingRepo) Create(ctx context.Context, f *model.ProjectFunding) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fundingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectFunding, error) {
	var f model.ProjectFunding
	err := r.db.WithContext(ctx).
		Preload("Transactions", func(q *gorm.DB) *gorm.DB { return q.Order("transaction_date DESC") }).
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fundingRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProjectFunding{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fundingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ProjectFunding{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fundingRepo) List(ctx context.Context, f FundingFilter) ([]*model.ProjectFunding, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.ProjectFunding{}))

	var fundings []*model.ProjectFunding
	return fundings, applyLimit(q.Order("created_at DESC"), f.Limit).Find(&fundings).Error
}

// AddTransaction appends a ledger row and rolls its amount into the parent
// funding total for the matching bucket, in one transaction.
func (r *fundingRepo) AddTransaction(ctx context.Context, tx *model.FundingTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Create(tx).Error; err != nil {
			return err
		}

		var column string
		switch tx.TransactionType {
		case model.TransactionRelease:
			column = "funds_released"
		case model.TransactionExpenditure:
			column = "funds_utilized"
		case model.TransactionCommitment:
			column = "funds_committed"
		case model.TransactionAdjustment:
			column = "budget_allocated"
		default:
			return nil
		}

		res := db.Model(&model.ProjectFunding{}).
			Where("id = ?", tx.FundingID).
			Update(column, gorm.Expr(column+" + ?", tx.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *fundingRepo) ListTransactions(ctx context.Context, f TransactionFilter) ([]*model.FundingTransaction, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&model.FundingTransaction{}))

	var txs []*model.FundingTransaction
	return txs, applyLimit(q.Order("funding_transactions.transaction_date DESC"), f.Limit).Find(&txs).Error
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type FundingService interface {
	Create(ctx context.Context, in CreateFundingInput) (*model.ProjectFunding, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProjectFunding, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateFundingInput) (*model.ProjectFunding, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repo.FundingFilter) ([]*model.ProjectFunding, error)

	RecordTransaction(ctx context.Context, in RecordTransactionInput) (*model.FundingTransaction, error)
	ListTransactions(ctx context.Context, f repo.TransactionFilter) ([]*model.FundingTransaction, error)
}

type fundingService struct {
	fundings repo.FundingRepo
	projects repo.ProjectRepo
	events   EventPublisher
}

func NewFundingService(fundings repo.FundingRepo, projects repo.ProjectRepo, events EventPublisher) FundingService {
	return &fundingService{fundings: fundings, projects: projects, events: events}
}

type CreateFundingInput struct {
	ProjectID       uuid.UUID           `json:"project_id" binding:"required"`
	FundingSource   string              `json:"funding_source" binding:"required"`
	FiscalYear      string              `json:"fiscal_year"`
	BudgetAllocated float64             `json:"budget_allocated"`
	Status          model.FundingStatus `json:"status"`
}

func (s *fundingService) Create(ctx context.Context, in CreateFundingInput) (*model.ProjectFunding, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	status := in.Status
	if status == "" {
		status = model.FundingProposed
	}

	f := &model.ProjectFunding{
		ProjectID:       in.ProjectID,
		FundingSource:   in.FundingSource,
		FiscalYear:      in.FiscalYear,
		BudgetAllocated: in.BudgetAllocated,
		Status:          status,
	}
	if err := s.fundings.Create(ctx, f); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "funding.created", f.ID.String(), f)
	return f, nil
}

func (s *fundingService) Get(ctx context.Context, id uuid.UUID) (*model.ProjectFunding, error) {
	f, err := s.fundings.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return f, nil
}

type UpdateFundingInput struct {
	FundingSource   *string              `json:"funding_source"`
	FiscalYear      *string              `json:"fiscal_year"`
	BudgetAllocated *float64             `json:"budget_allocated"`
	Status          *model.FundingStatus `json:"status"`
}

func (s *fundingService) Update(ctx context.Context, id uuid.UUID, in UpdateFundingInput) (*model.ProjectFunding, error) {
	fields := map[string]interface{}{}
	if in.FundingSource != nil {
		fields["funding_source"] = *in.FundingSource
	}
	if in.FiscalYear != nil {
		fields["fiscal_year"] = *in.FiscalYear
	}
	if in.BudgetAllocated != nil {
		fields["budget_allocated"] = *in.BudgetAllocated
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	if len(fields) > 0 {
		if err := s.fundings.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	f, err := s.fundings.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "funding.updated", f.ID.String(), f)
	return f, nil
}

func (s *fundingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.fundings.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.events.Publish(ctx, "funding.deleted", id.String(), nil)
	return nil
}

func (s *fundingService) List(ctx context.Context, f repo.FundingFilter) ([]*model.ProjectFunding, error) {
	fundings, err := s.fundings.List(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return fundings, nil
}

type RecordTransactionInput struct {
	FundingID       uuid.UUID             `json:"funding_id"`
	TransactionType model.TransactionType `json:"transaction_type"`
	Amount          float64               `json:"amount"`
	Reference       string                `json:"reference"`
	Description     string                `json:"description"`
	TransactionDate *time.Time            `json:"transaction_date"`
}

func (s *fundingService) RecordTransaction(ctx context.Context, in RecordTransactionInput) (*model.FundingTransaction, error) {
	if _, err := s.fundings.GetByID(ctx, in.FundingID); err != nil {
		return nil, mapStoreErr(err)
	}

	date := time.Now().UTC()
	if in.TransactionDate != nil {
		date = in.TransactionDate.UTC()
	}

	tx := &model.FundingTransaction{
		FundingID:       in.FundingID,
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		Reference:       in.Reference,
		Description:     in.Description,
		TransactionDate: date,
	}
	if err := s.fundings.AddTransaction(ctx, tx); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "funding.transaction", tx.ID.String(), tx)
	return tx, nil
}

func (s *fundingService) ListTransactions(ctx context.Context, f repo.TransactionFilter) ([]*model.FundingTransaction, error) {
	txs, err := s.fundings.ListTransactions(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return txs, nil
}

package usecase

import (
	"context"
	"slices"

	"investiguide_backend/internal/feature/funds/domain/entity"
)

// FundRepository abstracts the persistence layer for funds and their classification catalogs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FundRepository interface {
	// FindByID returns ErrFundNotFound when the fund does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Fund, error)
	// FindByIDs returns the existing funds in the order of ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Fund, error)
	// List returns funds matching filter ordered by id.
	List(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error)
	// ListCatalog returns every entry of one classification table ordered by label.
	ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error)
}

// FundUsecase provides read access to the fund catalog.
type FundUsecase struct {
	repo FundRepository
}

// NewFundUsecase creates a new FundUsecase with the given repository.
func NewFundUsecase(r FundRepository) *FundUsecase {
	return &FundUsecase{repo: r}
}

// ListFunds returns the funds matching filter. An empty filter returns every fund.
func (u *FundUsecase) ListFunds(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error) {
	if len(filter.EsgConcernIDs) > 0 {
		ids := slices.Clone(filter.EsgConcernIDs)
		slices.Sort(ids)
		filter.EsgConcernIDs = slices.Compact(ids)
	}
	return u.repo.List(ctx, filter)
}

// GetFund returns a single fund or ErrFundNotFound.
func (u *FundUsecase) GetFund(ctx context.Context, id uint) (*entity.Fund, error) {
	return u.repo.FindByID(ctx, id)
}

// ListCatalog returns the entries of a classification table.
func (u *FundUsecase) ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error) {
	if !slices.Contains(entity.CatalogKinds, kind) {
		return nil, ErrUnknownCatalog
	}
	return u.repo.ListCatalog(ctx, kind)
}

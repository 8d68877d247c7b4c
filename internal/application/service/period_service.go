package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// PeriodService handles billing period operations
type PeriodService struct {
	periodRepo   repository.BillingPeriodRepository
	customerRepo repository.CustomerRepository
	staffRepo    repository.StaffRepository
}

// NewPeriodService creates a new period service
func NewPeriodService(
	periodRepo repository.BillingPeriodRepository,
	customerRepo repository.CustomerRepository,
	staffRepo repository.StaffRepository,
) *PeriodService {
	return &PeriodService{
		periodRepo:   periodRepo,
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
	}
}

// CreatePeriodInput represents the create period input
type CreatePeriodInput struct {
	Kind  enum.BillingKind
	Scope *string
	Year  int
	Month string
}

// CreatePeriod opens a new billing period. The ledger is pre-populated with
// one zeroed entry per payee: customers on the scoped floor for rent,
// service and utility periods, active staff for salary runs. Payees are
// never added through patches afterwards.
func (s *PeriodService) CreatePeriod(ctx context.Context, input *CreatePeriodInput) (*entity.BillingPeriod, error) {
	if err := s.validatePeriodInput(input); err != nil {
		return nil, err
	}

	existing, err := s.periodRepo.GetByIdentity(ctx, input.Kind, input.Scope, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A period for this kind, scope and month already exists")
	}

	entries, err := s.initialLedger(ctx, input)
	if err != nil {
		return nil, err
	}

	period := &entity.BillingPeriod{
		Kind:   input.Kind,
		Scope:  input.Scope,
		Year:   input.Year,
		Month:  input.Month,
		Ledger: entries,
	}

	if err := s.periodRepo.Create(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

func (s *PeriodService) validatePeriodInput(input *CreatePeriodInput) error {
	var fields []apperror.FieldError

	if !input.Kind.IsValid() {
		fields = append(fields, apperror.FieldError{Field: "kind", Message: "Unknown billing kind"})
	}
	if input.Year <= 0 {
		fields = append(fields, apperror.FieldError{Field: "year", Message: "Year is required"})
	}
	if ledger.MonthIndex(input.Month) < 0 {
		fields = append(fields, apperror.FieldError{Field: "month", Message: "Unknown month name"})
	}
	if input.Kind == enum.KindSalary {
		if input.Scope != nil {
			fields = append(fields, apperror.FieldError{Field: "scope", Message: "Salary periods have no scope"})
		}
	} else if input.Scope == nil || *input.Scope == "" {
		fields = append(fields, apperror.FieldError{Field: "scope", Message: "Scope is required for this kind"})
	}

	if len(fields) > 0 {
		return apperror.NewValidationError("Invalid period", fields)
	}
	return nil
}

func (s *PeriodService) initialLedger(ctx context.Context, input *CreatePeriodInput) (entity.LedgerMap, error) {
	entries := entity.LedgerMap{}

	if input.Kind == enum.KindSalary {
		staff, err := s.staffRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, member := range staff {
			e := ledger.Entry{Amount: member.Salary}
			e.Recalculate()
			entries[member.ID.String()] = e
		}
		return entries, nil
	}

	customers, err := s.customerRepo.ListByFloor(ctx, *input.Scope)
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		e := ledger.Entry{Unit: customer.ShopNumber}
		e.Recalculate()
		entries[customer.ID.String()] = e
	}
	return entries, nil
}

// GetPeriod retrieves a period by ID
func (s *PeriodService) GetPeriod(ctx context.Context, id uuid.UUID) (*entity.BillingPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperror.NewNotFoundError("Billing period")
	}
	return period, nil
}

// ListPeriods lists periods of one kind, filtered by an optional
// year/month-range/scope criteria and paginated in memory. Filtering never
// touches SQL because month ranges are positional over the solar calendar,
// not lexical.
func (s *PeriodService) ListPeriods(ctx context.Context, kind enum.BillingKind, filter ledger.Range, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.BillingPeriod], error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown billing kind")
	}

	periods, err := s.periodRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	filtered := ledger.Apply(periods, func(p *entity.BillingPeriod) ledger.Meta {
		return p.Meta()
	}, filter)

	return pagination.Slice(filtered, params), nil
}

// SubmitLedgerInput represents one saved edit pass over a period's ledger.
// Entries arrive in the kind-specific wire shape keyed by payee ID.
type SubmitLedgerInput struct {
	PeriodID uuid.UUID
	Entries  map[string]map[string]interface{}
}

// SubmitLedger merges an edited ledger back into the stored period. Each
// submitted payee is diffed against the stored entry and only real changes
// are written; a submission with no effective change is refused without
// touching the database. Unknown payees fail the whole submission, the
// ledger is all-or-nothing.
func (s *PeriodService) SubmitLedger(ctx context.Context, input *SubmitLedgerInput) (*entity.BillingPeriod, error) {
	period, err := s.GetPeriod(ctx, input.PeriodID)
	if err != nil {
		return nil, err
	}

	store := period.Store()
	dirty := false

	for payeeID, rawEntry := range input.Entries {
		original, ok := store.Entry(payeeID)
		if !ok {
			return nil, apperror.NewBadRequestError("Unknown payee in submission: " + payeeID)
		}

		updated := original
		for key, value := range rawEntry {
			if field, ok := ledger.FieldFor(period.Kind, key); ok {
				updated.Set(field, value)
			}
		}

		patch, err := ledger.Diff(payeeID, original, updated)
		if err != nil {
			// No change for this payee, leave the stored entry alone.
			continue
		}

		if err := store.ApplyPatch(payeeID, patch); err != nil {
			return nil, err
		}
		dirty = true
	}

	if !dirty {
		return nil, apperror.ErrNothingToUpdate
	}

	period.Ledger = entity.LedgerMap(store.Snapshot())
	if err := s.periodRepo.UpdateLedger(ctx, period.ID, period.Ledger); err != nil {
		return nil, err
	}

	return period, nil
}

// AddPayee adds a directory member to an open period's ledger with a zeroed
// entry. This is the only way a payee enters a ledger after creation, patches
// never create entries.
func (s *PeriodService) AddPayee(ctx context.Context, periodID uuid.UUID, payeeID uuid.UUID) (*entity.BillingPeriod, error) {
	period, err := s.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	key := payeeID.String()
	if _, exists := period.Ledger[key]; exists {
		return nil, apperror.NewConflictError("Payee is already on this ledger")
	}

	var e ledger.Entry
	if period.Kind == enum.KindSalary {
		member, err := s.staffRepo.GetByID(ctx, payeeID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, apperror.NewNotFoundError("Staff member")
		}
		e.Amount = member.Salary
	} else {
		customer, err := s.customerRepo.GetByID(ctx, payeeID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		e.Unit = customer.ShopNumber
	}
	e.Recalculate()

	period.Ledger[key] = e
	if err := s.periodRepo.UpdateLedger(ctx, period.ID, period.Ledger); err != nil {
		return nil, err
	}

	return period, nil
}

// EditEntryField applies a single field edit to one payee's entry.
func (s *PeriodService) EditEntryField(ctx context.Context, periodID uuid.UUID, payeeID string, wireField string, value interface{}) (*entity.BillingPeriod, error) {
	period, err := s.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	field, ok := ledger.FieldFor(period.Kind, wireField)
	if !ok {
		return nil, apperror.NewBadRequestError("Field is not editable: " + wireField)
	}

	store := period.Store()
	if err := store.PatchEntry(payeeID, field, value); err != nil {
		return nil, apperror.NewNotFoundError("Ledger entry")
	}

	period.Ledger = entity.LedgerMap(store.Snapshot())
	if err := s.periodRepo.UpdateLedger(ctx, period.ID, period.Ledger); err != nil {
		return nil, err
	}

	return period, nil
}

// GetTotals sums a period's ledger
func (s *PeriodService) GetTotals(ctx context.Context, id uuid.UUID) (ledger.Totals, error) {
	period, err := s.GetPeriod(ctx, id)
	if err != nil {
		return ledger.Totals{}, err
	}
	return period.Totals(), nil
}

// DeletePeriod removes a period
func (s *PeriodService) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPeriod(ctx, id); err != nil {
		return err
	}
	return s.periodRepo.Delete(ctx, id)
}

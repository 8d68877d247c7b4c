package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

type fakePeriodRepo struct {
	periods map[uuid.UUID]*entity.BillingPeriod
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{periods: make(map[uuid.UUID]*entity.BillingPeriod)}
}

func (r *fakePeriodRepo) Create(_ context.Context, p *entity.BillingPeriod) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.periods[p.ID] = &cp
	return nil
}

func (r *fakePeriodRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.BillingPeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePeriodRepo) GetByIdentity(_ context.Context, kind enum.BillingKind, scope *string, year int, month string) (*entity.BillingPeriod, error) {
	for _, p := range r.periods {
		if p.Kind != kind || p.Year != year || p.Month != month {
			continue
		}
		if (p.Scope == nil) != (scope == nil) {
			continue
		}
		if scope != nil && *p.Scope != *scope {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePeriodRepo) ListByKind(_ context.Context, kind enum.BillingKind) ([]*entity.BillingPeriod, error) {
	var out []*entity.BillingPeriod
	for _, p := range r.periods {
		if p.Kind == kind {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePeriodRepo) Update(_ context.Context, p *entity.BillingPeriod) error {
	cp := *p
	r.periods[p.ID] = &cp
	return nil
}

func (r *fakePeriodRepo) UpdateLedger(_ context.Context, id uuid.UUID, m entity.LedgerMap) error {
	p, ok := r.periods[id]
	if !ok {
		return errors.New("period not found")
	}
	p.Ledger = m
	return nil
}

func (r *fakePeriodRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.periods, id)
	return nil
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers = append(r.customers, c)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByCode(_ context.Context, code string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ repository.CustomerFilter, _ *pagination.PaginationParams) ([]*entity.Customer, int64, error) {
	return r.customers, int64(len(r.customers)), nil
}

func (r *fakeCustomerRepo) ListByFloor(_ context.Context, floor string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.Floor == floor {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, _ *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }
func (r *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeStaffRepo struct {
	staff []*entity.Staff
}

func (r *fakeStaffRepo) Create(_ context.Context, s *entity.Staff) error {
	r.staff = append(r.staff, s)
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Staff, error) {
	for _, s := range r.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter, _ *pagination.PaginationParams) ([]*entity.Staff, int64, error) {
	return r.staff, int64(len(r.staff)), nil
}

func (r *fakeStaffRepo) ListActive(_ context.Context) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range r.staff {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, _ *entity.Staff) error { return nil }
func (r *fakeStaffRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }
func (r *fakeStaffRepo) Count(_ context.Context) (int64, error)         { return int64(len(r.staff)), nil }

func newTestPeriodService() (*PeriodService, *fakePeriodRepo, *fakeCustomerRepo, *fakeStaffRepo) {
	periodRepo := newFakePeriodRepo()
	customerRepo := &fakeCustomerRepo{}
	staffRepo := &fakeStaffRepo{}
	return NewPeriodService(periodRepo, customerRepo, staffRepo), periodRepo, customerRepo, staffRepo
}

func scopePtr(s string) *string { return &s }

func TestCreatePeriodSeedsLedgerFromFloor(t *testing.T) {
	svc, _, customerRepo, _ := newTestPeriodService()
	ctx := context.Background()

	c1 := &entity.Customer{ID: uuid.New(), Name: "احمد", Floor: "first-floor", ShopNumber: "12"}
	c2 := &entity.Customer{ID: uuid.New(), Name: "کریم", Floor: "first-floor", ShopNumber: "14"}
	c3 := &entity.Customer{ID: uuid.New(), Name: "ولی", Floor: "second-floor", ShopNumber: "20"}
	customerRepo.customers = []*entity.Customer{c1, c2, c3}

	period, err := svc.CreatePeriod(ctx, &CreatePeriodInput{
		Kind:  enum.KindRent,
		Scope: scopePtr("first-floor"),
		Year:  1403,
		Month: "حمل",
	})
	if err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}

	if len(period.Ledger) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(period.Ledger))
	}
	if _, ok := period.Ledger[c3.ID.String()]; ok {
		t.Error("customer from another floor seeded into the ledger")
	}
	if e := period.Ledger[c1.ID.String()]; e.Unit != "12" {
		t.Errorf("unit = %q, want the shop number", e.Unit)
	}
}

func TestCreatePeriodSalarySeedsFromActiveStaff(t *testing.T) {
	svc, _, _, staffRepo := newTestPeriodService()
	ctx := context.Background()

	s1 := &entity.Staff{ID: uuid.New(), Name: "نادر", Salary: 15000, IsActive: true}
	s2 := &entity.Staff{ID: uuid.New(), Name: "قاسم", Salary: 12000, IsActive: false}
	staffRepo.staff = []*entity.Staff{s1, s2}

	period, err := svc.CreatePeriod(ctx, &CreatePeriodInput{
		Kind:  enum.KindSalary,
		Year:  1403,
		Month: "جوزا",
	})
	if err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}

	if len(period.Ledger) != 1 {
		t.Fatalf("ledger has %d entries, want only active staff", len(period.Ledger))
	}
	e := period.Ledger[s1.ID.String()]
	if e.Amount != 15000 || e.Remainder != 15000 {
		t.Errorf("entry = %+v, want the salary as charge", e)
	}
}

func TestCreatePeriodValidation(t *testing.T) {
	svc, _, _, _ := newTestPeriodService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePeriodInput
	}{
		{"unknown month", CreatePeriodInput{Kind: enum.KindRent, Scope: scopePtr("f1"), Year: 1403, Month: "January"}},
		{"missing scope", CreatePeriodInput{Kind: enum.KindRent, Year: 1403, Month: "حمل"}},
		{"scope on salary", CreatePeriodInput{Kind: enum.KindSalary, Scope: scopePtr("f1"), Year: 1403, Month: "حمل"}},
		{"missing year", CreatePeriodInput{Kind: enum.KindRent, Scope: scopePtr("f1"), Month: "حمل"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreatePeriod(ctx, &tt.input); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestCreatePeriodRejectsDuplicateIdentity(t *testing.T) {
	svc, _, _, _ := newTestPeriodService()
	ctx := context.Background()

	input := &CreatePeriodInput{Kind: enum.KindRent, Scope: scopePtr("first-floor"), Year: 1403, Month: "حمل"}
	if _, err := svc.CreatePeriod(ctx, input); err != nil {
		t.Fatalf("first CreatePeriod: %v", err)
	}
	if _, err := svc.CreatePeriod(ctx, input); err == nil {
		t.Error("expected a conflict for the duplicate period")
	}
}

func seedRentPeriod(t *testing.T, svc *PeriodService, repo *fakePeriodRepo, payees map[string]ledger.Entry) *entity.BillingPeriod {
	t.Helper()
	scope := "first-floor"
	period := &entity.BillingPeriod{
		ID:     uuid.New(),
		Kind:   enum.KindRent,
		Scope:  &scope,
		Year:   1403,
		Month:  "حمل",
		Ledger: entity.LedgerMap{},
	}
	for id, e := range payees {
		e.Recalculate()
		period.Ledger[id] = e
	}
	if err := repo.Create(context.Background(), period); err != nil {
		t.Fatalf("seed period: %v", err)
	}
	return period
}

func TestSubmitLedgerAppliesOnlyRealChanges(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 0},
		"B": {Amount: 2000, Taken: 500},
	})

	updated, err := svc.SubmitLedger(ctx, &SubmitLedgerInput{
		PeriodID: period.ID,
		Entries: map[string]map[string]interface{}{
			"A": {"rant": 1000.0, "taken": 300.0},
			"B": {"rant": 2000.0, "taken": 500.0}, // unchanged
		},
	})
	if err != nil {
		t.Fatalf("SubmitLedger: %v", err)
	}

	a := updated.Ledger["A"]
	if a.Taken != 300 || a.Remainder != 700 {
		t.Errorf("A = %+v", a)
	}
	b := updated.Ledger["B"]
	if b.Taken != 500 || b.Remainder != 1500 {
		t.Errorf("B changed without a real edit: %+v", b)
	}
}

func TestSubmitLedgerRefusesEmptyPatch(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 200},
	})

	_, err := svc.SubmitLedger(ctx, &SubmitLedgerInput{
		PeriodID: period.ID,
		Entries: map[string]map[string]interface{}{
			"A": {"rant": 1000.0, "taken": 200.0},
		},
	})
	if !errors.Is(err, apperror.ErrNothingToUpdate) {
		t.Errorf("err = %v, want ErrNothingToUpdate", err)
	}

	stored, _ := repo.GetByID(ctx, period.ID)
	if stored.Ledger["A"].Taken != 200 {
		t.Error("a refused submission must not write")
	}
}

func TestSubmitLedgerUnknownPayeeFailsWholeSubmission(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 0},
	})

	_, err := svc.SubmitLedger(ctx, &SubmitLedgerInput{
		PeriodID: period.ID,
		Entries: map[string]map[string]interface{}{
			"A":     {"taken": 500.0},
			"ghost": {"taken": 100.0},
		},
	})
	if err == nil {
		t.Fatal("expected an error for the unknown payee")
	}

	stored, _ := repo.GetByID(ctx, period.ID)
	if stored.Ledger["A"].Taken != 0 {
		t.Error("failed submission must leave the stored ledger untouched")
	}
}

func TestSubmitLedgerCoercesBadAmounts(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 100},
	})

	updated, err := svc.SubmitLedger(ctx, &SubmitLedgerInput{
		PeriodID: period.ID,
		Entries: map[string]map[string]interface{}{
			"A": {"taken": "abc"},
		},
	})
	if err != nil {
		t.Fatalf("SubmitLedger: %v", err)
	}

	a := updated.Ledger["A"]
	if a.Taken != 0 {
		t.Errorf("Taken = %v, unparsable input coerces to zero", a.Taken)
	}
	if a.Amount != 1000 {
		t.Errorf("Amount = %v, untouched charge must survive", a.Amount)
	}
}

func TestEditEntryField(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 0},
	})

	updated, err := svc.EditEntryField(ctx, period.ID, "A", "taken", 400)
	if err != nil {
		t.Fatalf("EditEntryField: %v", err)
	}
	if updated.Ledger["A"].Remainder != 600 {
		t.Errorf("Remainder = %v, want 600", updated.Ledger["A"].Remainder)
	}

	if _, err := svc.EditEntryField(ctx, period.ID, "A", "remainder", 1); err == nil {
		t.Error("remainder must not be editable")
	}
	if _, err := svc.EditEntryField(ctx, period.ID, "ghost", "taken", 1); err == nil {
		t.Error("expected an error for the unknown payee")
	}
}

func TestListPeriodsFiltersAndPaginates(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	scope := "first-floor"
	for _, month := range ledger.SolarMonths {
		repo.Create(ctx, &entity.BillingPeriod{
			ID: uuid.New(), Kind: enum.KindRent, Scope: &scope,
			Year: 1403, Month: month, Ledger: entity.LedgerMap{},
		})
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 2}
	result, err := svc.ListPeriods(ctx, enum.KindRent, ledger.Range{
		StartMonth: "ثور",
		EndMonth:   "سرطان",
	}, params)
	if err != nil {
		t.Fatalf("ListPeriods: %v", err)
	}

	if result.Pagination.Total != 3 {
		t.Errorf("Total = %d, want 3 months in the span", result.Pagination.Total)
	}
	if len(result.Items) != 2 {
		t.Errorf("page holds %d items, want 2", len(result.Items))
	}
}

func TestGetTotals(t *testing.T) {
	svc, repo, _, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000, Taken: 400},
		"B": {Amount: 500, Taken: 0},
	})

	totals, err := svc.GetTotals(ctx, period.ID)
	if err != nil {
		t.Fatalf("GetTotals: %v", err)
	}
	if totals.TotalCharge != 1500 || totals.TotalTaken != 400 || totals.TotalRemainder != 1100 {
		t.Errorf("totals = %+v", totals)
	}
}

func TestAddPayee(t *testing.T) {
	svc, repo, customerRepo, _ := newTestPeriodService()
	ctx := context.Background()

	period := seedRentPeriod(t, svc, repo, map[string]ledger.Entry{
		"A": {Amount: 1000},
	})

	newcomer := &entity.Customer{ID: uuid.New(), Name: "سمیع", Floor: "first-floor", ShopNumber: "18"}
	customerRepo.customers = []*entity.Customer{newcomer}

	updated, err := svc.AddPayee(ctx, period.ID, newcomer.ID)
	if err != nil {
		t.Fatalf("AddPayee: %v", err)
	}

	e, ok := updated.Ledger[newcomer.ID.String()]
	if !ok {
		t.Fatal("new payee missing from the ledger")
	}
	if e.Unit != "18" {
		t.Errorf("unit = %q, want the shop number", e.Unit)
	}
	if e.Amount != 0 || e.Taken != 0 || e.Remainder != 0 {
		t.Errorf("entry = %+v, want a zeroed entry", e)
	}

	if _, err := svc.AddPayee(ctx, period.ID, newcomer.ID); err == nil {
		t.Error("expected a conflict adding the same payee twice")
	}

	if _, err := svc.AddPayee(ctx, period.ID, uuid.New()); err == nil {
		t.Error("expected not found for a payee outside the directory")
	}
}

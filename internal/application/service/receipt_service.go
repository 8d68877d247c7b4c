package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pdf"
	"github.com/alisinasultani/citycenter-api/pkg/printer"
)

// ReceiptService projects ledger entries into printable receipts
type ReceiptService struct {
	periodRepo   repository.BillingPeriodRepository
	customerRepo repository.CustomerRepository
	staffRepo    repository.StaffRepository
	settingsRepo repository.SettingsRepository
	renderer     *pdf.ReceiptRenderer
	printer      *printer.Printer
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	periodRepo repository.BillingPeriodRepository,
	customerRepo repository.CustomerRepository,
	staffRepo repository.StaffRepository,
	settingsRepo repository.SettingsRepository,
	renderer *pdf.ReceiptRenderer,
	receiptPrinter *printer.Printer,
) *ReceiptService {
	return &ReceiptService{
		periodRepo:   periodRepo,
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		settingsRepo: settingsRepo,
		renderer:     renderer,
		printer:      receiptPrinter,
	}
}

// BuildReceipt projects one payee's ledger entry into a receipt.
func (s *ReceiptService) BuildReceipt(ctx context.Context, periodID uuid.UUID, payeeID string) (*ledger.Receipt, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperror.NewNotFoundError("Billing period")
	}

	entry, ok := period.Ledger[payeeID]
	if !ok {
		return nil, apperror.NewNotFoundError("Ledger entry")
	}

	payee, err := s.lookupPayee(ctx, period.Kind, payeeID)
	if err != nil {
		return nil, err
	}

	receipt := ledger.Project(period.Meta(), payeeID, entry, payee)
	return &receipt, nil
}

// lookupPayee joins the directory record for a receipt. A missing record is
// a hard error, a found record with missing fields degrades inside Project.
func (s *ReceiptService) lookupPayee(ctx context.Context, kind enum.BillingKind, payeeID string) (ledger.Payee, error) {
	id, err := uuid.Parse(payeeID)
	if err != nil {
		return ledger.Payee{}, apperror.NewBadRequestError("Invalid payee ID")
	}

	if kind == enum.KindSalary {
		member, err := s.staffRepo.GetByID(ctx, id)
		if err != nil {
			return ledger.Payee{}, err
		}
		if member == nil {
			return ledger.Payee{}, apperror.NewNotFoundError("Staff member")
		}
		return ledger.Payee{
			ID:         payeeID,
			Name:       member.Name,
			LastName:   member.LastName,
			FatherName: member.FatherName,
		}, nil
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return ledger.Payee{}, err
	}
	if customer == nil {
		return ledger.Payee{}, apperror.NewNotFoundError("Customer")
	}
	return ledger.Payee{
		ID:         payeeID,
		Name:       customer.Name,
		LastName:   customer.LastName,
		FatherName: customer.FatherName,
		Code:       customer.Code,
	}, nil
}

func (s *ReceiptService) header(ctx context.Context) pdf.Header {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		settings = &entity.CompanySettings{Name: "City Center"}
	}
	return pdf.Header{
		CompanyName: settings.Name,
		Address:     settings.Address,
		Phone:       settings.Phone,
		FooterNote:  settings.FooterNote,
	}
}

// RenderPDF builds a receipt and renders it as a PDF document.
func (s *ReceiptService) RenderPDF(ctx context.Context, periodID uuid.UUID, payeeID string) ([]byte, error) {
	receipt, err := s.BuildReceipt(ctx, periodID, payeeID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(s.header(ctx), receipt)
}

// Print builds a receipt and sends it to the configured thermal printer.
func (s *ReceiptService) Print(ctx context.Context, periodID uuid.UUID, payeeID string) error {
	receipt, err := s.BuildReceipt(ctx, periodID, payeeID)
	if err != nil {
		return err
	}

	header := s.header(ctx)
	return s.printer.PrintReceipt(printer.Receipt{
		CompanyName: header.CompanyName,
		Address:     header.Address,
		Phone:       header.Phone,
		FooterNote:  header.FooterNote,
		BillNumber:  receipt.BillNumber,
		PeriodLabel: receipt.PeriodLabel,
		PayeeName:   receipt.PayeeName,
		FatherName:  receipt.FatherName,
		Unit:        receipt.Unit,
		Charge:      receipt.Charge,
		Taken:       receipt.Taken,
		Remainder:   receipt.Remainder,
		Description: receipt.Description,
	})
}

package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Transport sends raw ESC/POS data to a thermal printer.
type Transport interface {
	// Send writes raw ESC/POS bytes to the printer.
	Send(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer connection is active.
	IsConnected() bool
}

// --- USB transport (writes to device file, e.g. /dev/usb/lp0) ---

type usbTransport struct {
	path string
}

// NewUSBTransport creates a transport that writes to a USB device file.
func NewUSBTransport(devicePath string) Transport {
	return &usbTransport{path: devicePath}
}

func (t *usbTransport) Send(data []byte) error {
	f, err := os.OpenFile(t.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", t.path, err)
	}
	return nil
}

func (t *usbTransport) Close() error {
	return nil // USB transport opens/closes per print job
}

func (t *usbTransport) IsConnected() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// --- Network transport (dials TCP, e.g. 192.168.1.50:9100) ---

type networkTransport struct {
	address string
	timeout time.Duration
}

// NewNetworkTransport creates a transport that connects via TCP.
// Address should include port, e.g. "192.168.1.50:9100".
func NewNetworkTransport(address string) Transport {
	return &networkTransport{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (t *networkTransport) Send(data []byte) error {
	conn, err := net.DialTimeout("tcp", t.address, t.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", t.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", t.address, err)
	}
	return nil
}

func (t *networkTransport) Close() error {
	return nil // Network transport opens/closes per print job
}

func (t *networkTransport) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", t.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null transport (no-op, used when no printer is configured) ---

type nullTransport struct{}

// NewNullTransport creates a no-op transport for environments without hardware.
func NewNullTransport() Transport {
	return &nullTransport{}
}

func (t *nullTransport) Send(data []byte) error {
	return nil
}

func (t *nullTransport) Close() error {
	return nil
}

func (t *nullTransport) IsConnected() bool {
	return false
}

// NewTransportFromConfig creates the appropriate Transport based on type.
//
//	transportType: "usb", "network", or "null"
//	usbPath: device path for USB printers (e.g. "/dev/usb/lp0")
//	address: TCP address for network printers (e.g. "192.168.1.50:9100")
func NewTransportFromConfig(transportType, usbPath, address string) (Transport, error) {
	switch transportType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB transport")
		}
		return NewUSBTransport(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network transport")
		}
		return NewNetworkTransport(address), nil
	case "null", "":
		return NewNullTransport(), nil
	default:
		return nil, fmt.Errorf("printer: unknown transport %q (use usb, network, or null)", transportType)
	}
}

// Receipt is the flat payload laid out on the thermal slip.
type Receipt struct {
	CompanyName string
	Address     string
	Phone       string
	FooterNote  string

	BillNumber  string
	PeriodLabel string
	PayeeName   string
	FatherName  string
	Unit        string
	Charge      float64
	Taken       float64
	Remainder   float64
	Description string
}

// Printer formats receipts and sends them over a Transport.
type Printer struct {
	transport Transport
	width     int
}

// NewPrinter creates a receipt printer with the given character width.
func NewPrinter(transport Transport, charWidth int) *Printer {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &Printer{transport: transport, width: charWidth}
}

// PrintReceipt lays out one receipt and sends it.
func (p *Printer) PrintReceipt(r Receipt) error {
	d := NewDocument(p.width)

	d.SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text(r.CompanyName).
		SetFontSize(FontNormal).
		SetBold(false)
	if r.Address != "" {
		d.Text(r.Address)
	}
	if r.Phone != "" {
		d.Text(r.Phone)
	}

	d.SetAlign(AlignLeft).
		Separator('=').
		KeyValue("بل", r.BillNumber).
		KeyValue("دوره", r.PeriodLabel).
		KeyValue("نام", r.PayeeName)
	if r.FatherName != "" {
		d.KeyValue("نام پدر", r.FatherName)
	}
	if r.Unit != "" {
		d.KeyValue("دوکان", r.Unit)
	}

	d.Separator('-').
		KeyValue("مجموع", fmt.Sprintf("%.0f", r.Charge)).
		KeyValue("رسید", fmt.Sprintf("%.0f", r.Taken)).
		SetBold(true).
		KeyValue("باقی", fmt.Sprintf("%.0f", r.Remainder)).
		SetBold(false)

	if r.Description != "" {
		d.Separator('-').Text(r.Description)
	}

	if r.FooterNote != "" {
		d.LineFeed().SetAlign(AlignCenter).Text(r.FooterNote)
	}

	d.FeedLines(3).Cut()

	return p.transport.Send(d.Bytes())
}

// IsReady reports whether the underlying transport is reachable.
func (p *Printer) IsReady() bool {
	return p.transport.IsConnected()
}

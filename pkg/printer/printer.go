// Package printer sends ESC/POS slips to a thermal printer attached over USB or TCP.
package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"
)

// Kinds accepted by New
const (
	KindUSB     = "usb"
	KindNetwork = "network"
	KindNone    = "none"
)

// Printer delivers raw ESC/POS bytes
type Printer interface {
	Print(ctx context.Context, data []byte) error
	// Ready reports whether the device can be reached right now
	Ready(ctx context.Context) bool
	Kind() string
}

// New returns the printer for kind. An empty kind means no printer.
func New(kind, usbPath, address string) (Printer, error) {
	switch kind {
	case KindUSB:
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb path is required")
		}
		return &devicePrinter{path: usbPath}, nil
	case KindNetwork:
		if address == "" {
			return nil, fmt.Errorf("printer: address is required")
		}
		return &tcpPrinter{address: address, dialTimeout: 5 * time.Second, writeTimeout: 10 * time.Second}, nil
	case KindNone, "":
		return Discard{}, nil
	}
	return nil, fmt.Errorf("printer: unknown kind %q", kind)
}

// devicePrinter writes to a character device such as /dev/usb/lp0
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Ready(context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

func (p *devicePrinter) Kind() string { return KindUSB }

// tcpPrinter dials a raw port such as 192.168.1.50:9100 for every slip
type tcpPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

func (p *tcpPrinter) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: p.dialTimeout}
	return d.DialContext(ctx, "tcp", p.address)
}

func (p *tcpPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *tcpPrinter) Ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	conn, err := p.dial(ctx)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (p *tcpPrinter) Kind() string { return KindNetwork }

// Discard accepts every slip and prints nothing
type Discard struct{}

func (Discard) Print(context.Context, []byte) error { return nil }
func (Discard) Ready(context.Context) bool          { return false }
func (Discard) Kind() string                        { return KindNone }

package printer

import (
	"bytes"
	"strings"
)

// ESC/POS control bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for Slip.Align
const (
	AlignLeft   byte = 0
	AlignCenter byte = 1
	AlignRight  byte = 2
)

const (
	sizeNormal byte = 0x00
	sizeDouble byte = 0x11
)

// Slip builds the ESC/POS byte stream of one printed slip.
// Width is the paper width in characters: 32 for 58mm rolls, 48 for 80mm.
type Slip struct {
	buf   bytes.Buffer
	width int
}

// NewSlip starts a slip and resets the printer
func NewSlip(width int) *Slip {
	if width <= 0 {
		width = 32
	}
	s := &Slip{width: width}
	s.buf.Write([]byte{esc, '@'})
	return s
}

// Width is the character width the slip lays out for
func (s *Slip) Width() int {
	return s.width
}

func (s *Slip) Align(a byte) *Slip {
	s.buf.Write([]byte{esc, 'a', a})
	return s
}

func (s *Slip) Bold(on bool) *Slip {
	var b byte
	if on {
		b = 1
	}
	s.buf.Write([]byte{esc, 'E', b})
	return s
}

// Title prints a centered double-size line and restores normal text
func (s *Slip) Title(text string) *Slip {
	s.Align(AlignCenter).Bold(true)
	s.buf.Write([]byte{gs, '!', sizeDouble})
	s.Line(text)
	s.buf.Write([]byte{gs, '!', sizeNormal})
	return s.Bold(false)
}

// Line prints text, clipped to the slip width
func (s *Slip) Line(text string) *Slip {
	if len(text) > s.width {
		text = text[:s.width]
	}
	s.buf.WriteString(text)
	s.buf.WriteByte(lf)
	return s
}

// Rule prints a full-width line of c
func (s *Slip) Rule(c byte) *Slip {
	return s.Line(strings.Repeat(string(c), s.width))
}

// Row prints label on the left and value flush right: "Cash sales     280000.00"
func (s *Slip) Row(label, value string) *Slip {
	gap := s.width - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	s.buf.WriteString(label)
	s.buf.WriteString(strings.Repeat(" ", gap))
	s.buf.WriteString(value)
	s.buf.WriteByte(lf)
	return s
}

// Feed advances the paper n lines
func (s *Slip) Feed(n int) *Slip {
	for i := 0; i < n; i++ {
		s.buf.WriteByte(lf)
	}
	return s
}

// Cut feeds past the tear bar and cuts the paper
func (s *Slip) Cut() *Slip {
	s.Feed(3)
	s.buf.Write([]byte{gs, 'V', 0x00})
	return s
}

// Bytes returns the accumulated stream
func (s *Slip) Bytes() []byte {
	return s.buf.Bytes()
}

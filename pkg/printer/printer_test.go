package printer

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsPrinterByKind(t *testing.T) {
	p, err := New("", "", "")
	require.NoError(t, err)
	assert.Equal(t, KindNone, p.Kind())
	assert.False(t, p.Ready(context.Background()))

	p, err = New(KindUSB, "/dev/usb/lp0", "")
	require.NoError(t, err)
	assert.Equal(t, KindUSB, p.Kind())

	_, err = New(KindNetwork, "", "")
	assert.Error(t, err)

	_, err = New("bluetooth", "", "")
	assert.Error(t, err)
}

func TestSlipRowRightAlignsValue(t *testing.T) {
	slip := NewSlip(20)
	slip.Row("Cash", "100.00")

	out := slip.Bytes()
	// reset sequence, then the row
	assert.Equal(t, []byte{esc, '@'}, out[:2])
	assert.Equal(t, "Cash          100.00\n", string(out[2:]))
}

func TestSlipLineClipsToWidth(t *testing.T) {
	slip := NewSlip(8)
	slip.Line("ABCDEFGHIJ")
	assert.Equal(t, "ABCDEFGH\n", string(slip.Bytes()[2:]))
}

func TestSlipDefaultsWidth(t *testing.T) {
	assert.Equal(t, 32, NewSlip(0).Width())
}

func TestSlipCutEndsWithCutCommand(t *testing.T) {
	out := NewSlip(32).Line("x").Cut().Bytes()
	assert.True(t, bytes.HasSuffix(out, []byte{gs, 'V', 0x00}))
}

func TestNetworkPrinterSendsBytes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	p, err := New(KindNetwork, "", ln.Addr().String())
	require.NoError(t, err)

	payload := NewSlip(32).Title("Ali Mobile Shop").Cut().Bytes()
	require.NoError(t, p.Print(context.Background(), payload))
	assert.Equal(t, payload, <-received)
}

func TestNetworkPrinterNotReadyWhenNothingListens(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	p, err := New(KindNetwork, "", addr)
	require.NoError(t, err)
	assert.False(t, p.Ready(context.Background()))
	assert.Error(t, p.Print(context.Background(), []byte("x")))
}

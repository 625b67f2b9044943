package protocol

import (
	"errors"
	"io"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<64 - 1}

	for _, v := range values {
		e := NewEncoder()
		e.WriteUvarint(v)

		d := NewDecoder(e.Bytes())
		got, err := d.ReadUvarint()
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
		if !d.EOF() {
			t.Errorf("round trip %d: %d bytes left", v, d.Remaining())
		}
	}
}

func TestUvarintIncomplete(t *testing.T) {
	d := NewDecoder([]byte{0x80, 0x80})
	if _, err := d.ReadUvarint(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestUvarintOverflow(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	d := NewDecoder(buf)
	if _, err := d.ReadUvarint(); !errors.Is(err, ErrVarintOverflow) {
		t.Errorf("expected ErrVarintOverflow, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteString("hello")
	e.WriteString("")
	e.WriteString("héllo wörld")

	d := NewDecoder(e.Bytes())
	for _, want := range []string{"hello", "", "héllo wörld"} {
		got, err := d.ReadString()
		if err != nil {
			t.Fatalf("decode %q: %v", want, err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestStringLengthBeyondBuffer(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(100)
	e.WriteByte('x')

	d := NewDecoder(e.Bytes())
	if _, err := d.ReadString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestCollectionCountLimit(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(MaxCollectionCount + 1)

	d := NewDecoder(e.Bytes())
	if _, err := d.ReadCollectionCount(); !errors.Is(err, ErrCollectionTooLarge) {
		t.Errorf("expected ErrCollectionTooLarge, got %v", err)
	}
}

func TestEncoderReset(t *testing.T) {
	e := NewEncoder()
	e.WriteString("abc")
	e.Reset()
	if e.Len() != 0 {
		t.Errorf("expected empty encoder after reset, got %d bytes", e.Len())
	}
}

package protocol

import (
	"reflect"
	"testing"

	"github.com/loom-ui/loom/pkg/dom"
)

func TestPatchesRoundTrip(t *testing.T) {
	pf := &PatchesFrame{
		Seq: 42,
		Patches: []Patch{
			{Op: dom.OpSetText, Target: "n3", Value: "7"},
			{Op: dom.OpSetAttr, Target: "n4", Key: "value", Value: "25"},
			{Op: dom.OpRemoveAttr, Target: "n4", Key: "disabled"},
			{Op: dom.OpAddClass, Target: "n5", Key: "odd"},
			{Op: dom.OpRemoveClass, Target: "n5", Key: "odd"},
			{Op: dom.OpSetStyle, Target: "n6", Key: "width", Value: "20px"},
			{Op: dom.OpRemoveStyle, Target: "n6", Key: "--accent"},
			{Op: dom.OpSetHTML, Target: "n7", Value: "<p>hi</p>"},
		},
	}

	msg := EncodePatches(pf)

	ft, payload, err := SplitFrame(msg)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if ft != FramePatches {
		t.Fatalf("frame type = %v, want Patches", ft)
	}

	got, err := DecodePatches(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Seq != 42 {
		t.Errorf("seq = %d, want 42", got.Seq)
	}
	if !reflect.DeepEqual(got.Patches, pf.Patches) {
		t.Errorf("patches mismatch:\ngot  %+v\nwant %+v", got.Patches, pf.Patches)
	}
}

func TestPatchesEmptyBatch(t *testing.T) {
	msg := EncodePatches(&PatchesFrame{Seq: 1})
	_, payload, err := SplitFrame(msg)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	got, err := DecodePatches(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Patches) != 0 {
		t.Errorf("expected no patches, got %d", len(got.Patches))
	}
}

func TestDecodePatchUnknownOp(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(1) // seq
	e.WriteUvarint(1) // count
	e.WriteByte(0x7F) // bogus op
	e.WriteString("n1")

	if _, err := DecodePatches(e.Bytes()); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestDecodePatchesTrailingBytes(t *testing.T) {
	e := NewEncoder()
	EncodePatchesTo(e, &PatchesFrame{Seq: 1})
	e.WriteByte(0xFF)

	if _, err := DecodePatches(e.Bytes()); err != ErrTrailingBytes {
		t.Errorf("expected ErrTrailingBytes, got %v", err)
	}
}

func TestFromMutation(t *testing.T) {
	m := dom.Mutation{Op: dom.OpSetText, Target: "n9", Value: "x"}
	p := FromMutation(m)
	if p.Op != dom.OpSetText || p.Target != "n9" || p.Value != "x" {
		t.Errorf("unexpected patch %+v", p)
	}
}

func TestEventRoundTrip(t *testing.T) {
	msg := EncodeEvent(&Event{Target: "n12", Type: "click"})

	ft, payload, err := SplitFrame(msg)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if ft != FrameEvent {
		t.Fatalf("frame type = %v, want Event", ft)
	}

	ev, err := DecodeEvent(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Target != "n12" || ev.Type != "click" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestSplitFrameErrors(t *testing.T) {
	if _, _, err := SplitFrame(nil); err != ErrEmptyFrame {
		t.Errorf("empty: got %v", err)
	}
	if _, _, err := SplitFrame([]byte{0xEE}); err != ErrInvalidFrameType {
		t.Errorf("invalid type: got %v", err)
	}
}

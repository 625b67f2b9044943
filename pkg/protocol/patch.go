package protocol

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/dom"
)

// Patch mirrors dom.Mutation on the wire: one facet write on one
// element, addressed by the element's document id.
type Patch struct {
	Op     dom.MutationOp
	Target string
	Key    string
	Value  string
}

// PatchesFrame is a batch of patches with a session sequence number.
// The client applies batches in sequence order and can detect gaps.
type PatchesFrame struct {
	Seq     uint64
	Patches []Patch
}

// FromMutation converts an observed DOM mutation to its wire form.
func FromMutation(m dom.Mutation) Patch {
	return Patch{Op: m.Op, Target: m.Target, Key: m.Key, Value: m.Value}
}

// EncodePatches encodes a patches frame, including the leading frame
// type byte.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FramePatches))
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a patches frame payload using the provided
// encoder.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteString(p.Target)

	switch p.Op {
	case dom.OpSetText, dom.OpSetHTML:
		e.WriteString(p.Value)

	case dom.OpSetAttr, dom.OpSetStyle:
		e.WriteString(p.Key)
		e.WriteString(p.Value)

	case dom.OpRemoveAttr, dom.OpRemoveStyle,
		dom.OpAddClass, dom.OpRemoveClass:
		e.WriteString(p.Key)
	}
}

// DecodePatches decodes a patches frame payload (frame type byte
// already stripped).
func DecodePatches(data []byte) (*PatchesFrame, error) {
	d := NewDecoder(data)
	pf, err := DecodePatchesFrom(d)
	if err != nil {
		return nil, err
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}
	return pf, nil
}

// DecodePatchesFrom decodes a patches frame from a decoder.
func DecodePatchesFrom(d *Decoder) (*PatchesFrame, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	patches := make([]Patch, count)
	for i := 0; i < count; i++ {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, err
		}
	}
	return &PatchesFrame{Seq: seq, Patches: patches}, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = dom.MutationOp(opByte)

	p.Target, err = d.ReadString()
	if err != nil {
		return err
	}

	switch p.Op {
	case dom.OpSetText, dom.OpSetHTML:
		p.Value, err = d.ReadString()

	case dom.OpSetAttr, dom.OpSetStyle:
		p.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case dom.OpRemoveAttr, dom.OpRemoveStyle,
		dom.OpAddClass, dom.OpRemoveClass:
		p.Key, err = d.ReadString()

	default:
		return fmt.Errorf("protocol: unknown patch op 0x%02x", byte(p.Op))
	}
	return err
}

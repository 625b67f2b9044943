package protocol

// Event is a DOM event forwarded by the browser client. Target is the
// element's document id from the rendered data-loom-id attribute.
type Event struct {
	Target string
	Type   string
}

// EncodeEvent encodes an event frame, including the leading frame type
// byte.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameEvent))
	e.WriteString(ev.Target)
	e.WriteString(ev.Type)
	return e.Bytes()
}

// DecodeEvent decodes an event frame payload (frame type byte already
// stripped).
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)
	target, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	typ, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}
	return &Event{Target: target, Type: typ}, nil
}

// EncodeError encodes a terminal error frame carrying a message for the
// client console.
func EncodeError(msg string) []byte {
	e := NewEncoder()
	e.WriteByte(byte(FrameError))
	e.WriteString(msg)
	return e.Bytes()
}

package protocol

import "errors"

// FrameType is the first byte of every websocket message. The websocket
// layer already delimits messages, so no length header is needed.
type FrameType uint8

const (
	FrameEvent   FrameType = 0x01 // client to server: forwarded DOM event
	FramePatches FrameType = 0x02 // server to client: batched facet patches
	FramePing    FrameType = 0x03 // either direction: liveness probe
	FramePong    FrameType = 0x04 // reply to ping
	FrameError   FrameType = 0x05 // server to client: terminal error
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FramePing:
		return "Ping"
	case FramePong:
		return "Pong"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

var (
	ErrEmptyFrame       = errors.New("protocol: empty frame")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
	ErrTrailingBytes    = errors.New("protocol: trailing bytes after payload")
)

// SplitFrame separates a raw message into its frame type and payload.
func SplitFrame(msg []byte) (FrameType, []byte, error) {
	if len(msg) == 0 {
		return 0, nil, ErrEmptyFrame
	}
	ft := FrameType(msg[0])
	switch ft {
	case FrameEvent, FramePatches, FramePing, FramePong, FrameError:
		return ft, msg[1:], nil
	}
	return 0, nil, ErrInvalidFrameType
}

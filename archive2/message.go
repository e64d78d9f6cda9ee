package archive2

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MessageContents is implemented by every decoded message body type. Messages
// whose type this package does not decode resolve to Other, a placeholder
// that still records the message's type and raw bytes.
type MessageContents interface {
	isMessageContents()
}

// Other is the placeholder contents for message types this package does not
// decode a structured body for (e.g. Performance/Maintenance, Console,
// RDA Control, Request For Data, Loopback).
type Other struct {
	Type uint8
}

func (Other) isMessageContents() {}

// Message is one logical decoded message: either a single segment or the
// reassembled body of a multi-segment message, together with the header(s)
// that described it on the wire.
type Message struct {
	// Headers holds one entry per physical segment that contributed to this
	// logical message, in wire order. A single-segment message has exactly
	// one entry.
	Headers []MessageHeader

	// Contents is the decoded, type-specific body.
	Contents MessageContents

	// Offset is the byte offset of the first segment's envelope (including
	// its 12-byte ignorable prefix) within the record bytes passed to
	// DecodeMessages.
	Offset int

	// Size is the total number of logical payload bytes consumed across all
	// contributing segments.
	Size int
}

// Header returns the first segment's header, the common case for
// non-segmented messages.
func (m Message) Header() MessageHeader { return m.Headers[0] }

// Type returns the message type code.
func (m Message) Type() uint8 { return m.Headers[0].MessageType }

// segmentAccumulator tracks the in-progress reassembly of one multi-segment
// message.
type segmentAccumulator struct {
	headers  []MessageHeader
	payloads [][]byte
	offset   int
}

// DecodeMessages iterates the decompressed bytes of one LDM record, dispatching
// each message (or reassembled multi-segment message) to its type-specific
// decoder. Decode failures for an individual message are logged and do not
// abort the remaining messages in the record, matching §7's propagation
// policy: record framing errors abort the record, but message-body errors
// only skip that message.
func DecodeMessages(data []byte, bc *buildContext) []Message {
	if bc == nil {
		bc = &buildContext{}
	}

	cur := NewCursor(data)
	var messages []Message
	var pending *segmentAccumulator

	for cur.Remaining() > 0 {
		segmentStart := cur.Offset()
		if cur.Remaining() < LegacyCTMHeaderLength+MessageHeaderLength {
			break
		}
		if err := cur.Advance(LegacyCTMHeaderLength); err != nil {
			break
		}
		header, err := decodeMessageHeader(cur)
		if err != nil {
			break
		}

		segmentedPath := header.SegmentCount > 1 || header.MessageType == MessageTypeClutterFilterMap

		var payloadSize int
		switch {
		case header.MessageType == MessageTypeDigitalRadarData:
			payloadSize = header.SizeBytes() - MessageHeaderLength
		case segmentedPath:
			payloadSize = header.SizeBytes() - MessageHeaderLength
		default:
			payloadSize = FixedRecordLength - LegacyCTMHeaderLength - MessageHeaderLength
		}
		if payloadSize < 0 {
			logrus.Warnf("archive2: message type %d at offset %d declared negative payload size, skipping record", header.MessageType, segmentStart)
			break
		}

		payload, err := cur.TakeBytes(payloadSize)
		if err != nil {
			// Truncated at the tail of the record; nothing more to recover.
			logrus.Warnf("archive2: truncated message at offset %d: %v", segmentStart, err)
			break
		}

		if segmentedPath {
			if header.SegmentNumber == 1 || pending == nil {
				pending = &segmentAccumulator{offset: segmentStart}
			}
			pending.headers = append(pending.headers, header)
			pending.payloads = append(pending.payloads, payload)

			if len(pending.payloads) >= int(header.SegmentCount) {
				msg := dispatchSegmented(pending, bc)
				messages = append(messages, msg)
				pending = nil
			}
			continue
		}

		contents, err := dispatchSingle(header, payload, bc)
		if err != nil {
			logrus.Warnf("archive2: failed to decode message type %d at offset %d: %v", header.MessageType, segmentStart, err)
			contents = Other{Type: header.MessageType}
		}
		messages = append(messages, Message{
			Headers:  []MessageHeader{header},
			Contents: contents,
			Offset:   segmentStart,
			Size:     payloadSize,
		})
	}

	return messages
}

// dispatchSingle decodes a non-segmented message's payload by type.
func dispatchSingle(header MessageHeader, payload []byte, bc *buildContext) (MessageContents, error) {
	switch header.MessageType {
	case MessageTypeDigitalRadarDataLegacy:
		return decodeDigitalRadarDataLegacy(payload)
	case MessageTypeRDAStatus:
		status, err := decodeRDAStatusData(payload)
		if err != nil {
			return nil, err
		}
		bc.observe(status.BuildNumber())
		return status, nil
	case MessageTypeVolumeCoveragePattern:
		return decodeVolumeCoveragePattern(payload)
	case MessageTypeDigitalRadarData:
		return decodeDigitalRadarData(payload, bc)
	case MessageTypeClutterCensorZones:
		return decodeClutterCensorZones(NewSegmentedCursor([][]byte{payload}))
	default:
		return Other{Type: header.MessageType}, nil
	}
}

// dispatchSegmented decodes a reassembled multi-segment message by type.
func dispatchSegmented(acc *segmentAccumulator, bc *buildContext) Message {
	header := acc.headers[0]
	seg := NewSegmentedCursor(acc.payloads)

	var contents MessageContents
	var err error
	switch header.MessageType {
	case MessageTypeClutterFilterBypassMap:
		contents, err = decodeClutterFilterBypassMap(seg)
	case MessageTypeClutterFilterMap:
		contents, err = decodeClutterFilterMap(seg)
	case MessageTypeAdaptationData:
		contents, err = decodeAdaptationData(seg)
	case MessageTypePRFData:
		contents, err = decodePRFData(seg)
	case MessageTypeLogData:
		contents, err = decodeLogData(seg)
	case MessageTypeClutterCensorZones:
		contents, err = decodeClutterCensorZones(seg)
	default:
		contents, err = Other{Type: header.MessageType}, nil
	}

	size := 0
	for _, p := range acc.payloads {
		size += len(p)
	}

	if err != nil {
		logrus.Warnf("archive2: failed to decode segmented message type %d at offset %d: %v", header.MessageType, acc.offset, err)
		contents = Other{Type: header.MessageType}
	}

	return Message{
		Headers:  acc.headers,
		Contents: contents,
		Offset:   acc.offset,
		Size:     size,
	}
}

// errTooShort is a small helper used by body decoders to report a truncated
// payload with the field name that ran out of room.
func errTooShort(what string, need, have int) error {
	return fmt.Errorf("%s: need %d bytes, have %d", what, need, have)
}

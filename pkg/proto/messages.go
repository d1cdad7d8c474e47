package proto

import (
	"encoding/json"
	"strconv"
)

// Message type tags on the wire.
const (
	TypeCardRead      = "card_read"
	TypeEventError    = "event_error"
	TypeEventREX      = "event_rex"
	TypeDoorContact   = "event_door_contact"
	TypeHeartbeat     = "heartbeat"
	TypeBoot          = "boot"
	TypeCommand       = "command"
	TypeIdentify      = "nano"
	TypeAckSetAddress = "ack_set_address"
)

// Commands accepted from the hub.
const (
	CmdIdentify      = "identify"
	CmdSetAddress    = "set_address"
	CmdFeedbackGrant = "feedback_grant"
	CmdFeedbackDeny  = "feedback_deny"
)

// CardRead reports a decoded card presented to a reader.
type CardRead struct {
	Type     string `json:"type"`
	HubAddr  int    `json:"hub_addr"`
	ReaderID int    `json:"rdr_id"`
	Card     string `json:"card"`
	Bits     int    `json:"bits"`
}

// NewCardRead creates a CardRead for a raw code.
func NewCardRead(hubAddr, readerID int, code uint32, bits uint8) *CardRead {
	return &CardRead{
		Type:     TypeCardRead,
		HubAddr:  hubAddr,
		ReaderID: readerID,
		Card:     strconv.FormatUint(uint64(code), 10),
		Bits:     int(bits),
	}
}

// EventError reports a reader-level error condition.
type EventError struct {
	Type     string `json:"type"`
	HubAddr  int    `json:"hub_addr"`
	ReaderID int    `json:"rdr_id"`
	Error    string `json:"error"`
}

// NewEventError creates an EventError.
func NewEventError(hubAddr, readerID int, reason string) *EventError {
	return &EventError{Type: TypeEventError, HubAddr: hubAddr, ReaderID: readerID, Error: reason}
}

// EventREX reports a request-to-exit button press.
type EventREX struct {
	Type     string `json:"type"`
	HubAddr  int    `json:"hub_addr"`
	ReaderID int    `json:"rdr_id"`
}

// NewEventREX creates an EventREX.
func NewEventREX(hubAddr, readerID int) *EventREX {
	return &EventREX{Type: TypeEventREX, HubAddr: hubAddr, ReaderID: readerID}
}

// DoorContact reports a door contact state change.
type DoorContact struct {
	Type     string `json:"type"`
	HubAddr  int    `json:"hub_addr"`
	ReaderID int    `json:"rdr_id"`
	State    string `json:"state"`
}

// Door contact states.
const (
	DoorOpen   = "open"
	DoorClosed = "closed"
)

// NewDoorContact creates a DoorContact.
func NewDoorContact(hubAddr, readerID int, state string) *DoorContact {
	return &DoorContact{Type: TypeDoorContact, HubAddr: hubAddr, ReaderID: readerID, State: state}
}

// Heartbeat is the periodic liveness message.
type Heartbeat struct {
	Type    string `json:"type"`
	HubAddr int    `json:"hub_addr"`
}

// NewHeartbeat creates a Heartbeat.
func NewHeartbeat(hubAddr int) *Heartbeat {
	return &Heartbeat{Type: TypeHeartbeat, HubAddr: hubAddr}
}

// Boot announces the device coming online.
type Boot struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
	UID  string `json:"uid"`
}

// NewBoot creates a Boot notice.
func NewBoot(msg, uid string) *Boot {
	return &Boot{Type: TypeBoot, Msg: msg, UID: uid}
}

// Command is the only inbound message kind. TargetUID and NewAddr are
// set for set_address only.
type Command struct {
	Type      string `json:"type"`
	HubAddr   int    `json:"hub_addr"`
	ReaderID  int    `json:"rdr_id"`
	Cmd       string `json:"cmd"`
	TargetUID string `json:"target_uid,omitempty"`
	NewAddr   int    `json:"new_addr,omitempty"`
}

// Identify is the answer to an identify command.
type Identify struct {
	Type    string `json:"type"`
	UID     string `json:"uid"`
	HubAddr int    `json:"hub_addr"`
	Readers int    `json:"readers"`
}

// NewIdentify creates an Identify response.
func NewIdentify(uid string, hubAddr, readers int) *Identify {
	return &Identify{Type: TypeIdentify, UID: uid, HubAddr: hubAddr, Readers: readers}
}

// AckSetAddress acknowledges a successful set_address command.
type AckSetAddress struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	UID     string `json:"uid"`
	NewAddr int    `json:"new_addr"`
}

// NewAckSetAddress creates a success acknowledgement.
func NewAckSetAddress(uid string, newAddr int) *AckSetAddress {
	return &AckSetAddress{Type: TypeAckSetAddress, Status: "success", UID: uid, NewAddr: newAddr}
}

// EncodeMessage serializes msg to its compact payload and wraps it
// into a complete frame ready for a single write.
func EncodeMessage(msg interface{}) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return EncodeFrame(payload)
}

// ParseCommand decodes payload as a command message. Unknown extra
// fields are ignored.
func ParseCommand(payload string) (*Command, error) {
	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		return nil, err
	}
	if cmd.Type != TypeCommand {
		return nil, ErrNotCommand
	}
	return &cmd, nil
}

// ParseMessage decodes any known payload by its type tag. Unknown
// types decode into a generic map so callers can still inspect them.
func ParseMessage(payload string) (interface{}, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(payload), &tag); err != nil {
		return nil, err
	}
	var msg interface{}
	switch tag.Type {
	case TypeCardRead:
		msg = &CardRead{}
	case TypeEventError:
		msg = &EventError{}
	case TypeEventREX:
		msg = &EventREX{}
	case TypeDoorContact:
		msg = &DoorContact{}
	case TypeHeartbeat:
		msg = &Heartbeat{}
	case TypeBoot:
		msg = &Boot{}
	case TypeCommand:
		msg = &Command{}
	case TypeIdentify:
		msg = &Identify{}
	case TypeAckSetAddress:
		msg = &AckSetAddress{}
	default:
		generic := map[string]interface{}{}
		if err := json.Unmarshal([]byte(payload), &generic); err != nil {
			return nil, err
		}
		return generic, nil
	}
	if err := json.Unmarshal([]byte(payload), msg); err != nil {
		return nil, err
	}
	return msg, nil
}

package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeMessageCompact(t *testing.T) {
	frame, err := EncodeMessage(NewHeartbeat(4))
	require.NoError(t, err)
	payload, err := DecodeFrame(string(frame))
	require.NoError(t, err)
	require.Equal(t, `{"type":"heartbeat","hub_addr":4}`, payload)
}

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"command","hub_addr":2,"rdr_id":1,"cmd":"set_address","target_uid":"AB12","new_addr":7}`)
	require.NoError(t, err)
	require.Equal(t, 2, cmd.HubAddr)
	require.Equal(t, 1, cmd.ReaderID)
	require.Equal(t, CmdSetAddress, cmd.Cmd)
	require.Equal(t, "AB12", cmd.TargetUID)
	require.Equal(t, 7, cmd.NewAddr)
}

func TestParseCommandIgnoresUnknownFields(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"command","hub_addr":1,"rdr_id":1,"cmd":"identify","future":"field"}`)
	require.NoError(t, err)
	require.Equal(t, CmdIdentify, cmd.Cmd)
}

func TestParseCommandRejects(t *testing.T) {
	_, err := ParseCommand(`{"type":"heartbeat","hub_addr":1}`)
	require.Equal(t, ErrNotCommand, err)
	_, err = ParseCommand(`not json`)
	require.Error(t, err)
}

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage(`{"type":"card_read","hub_addr":1,"rdr_id":1,"card":"1234567","bits":26}`)
	require.NoError(t, err)
	read, ok := msg.(*CardRead)
	require.True(t, ok)
	require.Equal(t, "1234567", read.Card)
	require.Equal(t, 26, read.Bits)

	msg, err = ParseMessage(`{"type":"nano","uid":"CAFE","hub_addr":0,"readers":1}`)
	require.NoError(t, err)
	ident, ok := msg.(*Identify)
	require.True(t, ok)
	require.Equal(t, "CAFE", ident.UID)
	require.Equal(t, 0, ident.HubAddr)

	msg, err = ParseMessage(`{"type":"something_new","x":1}`)
	require.NoError(t, err)
	_, ok = msg.(map[string]interface{})
	require.True(t, ok)
}

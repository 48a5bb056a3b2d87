package network

import "encoding/json"

// Wire message types. The replication service pushes typed JSON envelopes;
// the client sends reducer calls the same way
const (
	MsgHello       = "hello"
	MsgWelcome     = "welcome"
	MsgTableUpdate = "table_update"
	MsgReducerCall = "reducer_call"
	MsgReducerErr  = "reducer_error"
)

// Envelope frames every message on the socket
type Envelope struct {
	Type string `json:"type"`

	// HELLO / WELCOME
	PlayerName string `json:"playerName,omitempty"`
	Identity   string `json:"identity,omitempty"`

	// TABLE_UPDATE: whole-table snapshot, optionally deflate-compressed
	Table       string          `json:"table,omitempty"`
	Compressed  bool            `json:"compressed,omitempty"`
	Rows        json.RawMessage `json:"rows,omitempty"`
	RowsDeflate []byte          `json:"rowsDeflate,omitempty"`

	// REDUCER_CALL / REDUCER_ERROR
	Reducer string          `json:"reducer,omitempty"`
	Args    json.RawMessage `json:"args,omitempty"`
	Error   string          `json:"error,omitempty"`
}

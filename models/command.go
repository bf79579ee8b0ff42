package models

import (
	"encoding/json"
	"time"
)

type CommandType string

const (
	CmdSnapshot CommandType = "snapshot"
	CmdSeed     CommandType = "seed"
	CmdReset    CommandType = "reset"
)

// Command is an operator request queued in the local store and picked
// up by the daemon's poll loop.
type Command struct {
	ID          int64           `json:"id" db:"id"`
	Command     CommandType     `json:"command" db:"command"`
	Params      json.RawMessage `json:"params" db:"params"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at" db:"processed_at"`
}

type CommandParams struct {
	Bucket string `json:"bucket,omitempty"`
}

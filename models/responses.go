package models

import "encoding/json"

// Envelope is the wire envelope used by every backend endpoint.
// Successful responses carry {"success": true, "data": ...}; error responses
// carry {"message": "..."} (sometimes together with success=false).
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

package utils

import (
	"encoding/json"
	"net/http"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ScriptResponse mirrors the reply shape of the spreadsheet-script backend
// this service replaced: { success, error?, fileId?, name? }. The legacy
// endpoints must keep answering in this shape.
type ScriptResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	FileID  string `json:"fileId,omitempty"`
	Name    string `json:"name,omitempty"`
}

// ScriptJSON sends a legacy script-shaped JSON response.
func ScriptJSON(w http.ResponseWriter, status int, resp ScriptResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

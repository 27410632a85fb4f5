package model

import "time"

const (
	EventAuthDecision    = "auth.decision"
	EventThreeDSCallback = "threeds.callback"
)

type AuthDecisionEvent struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"order_id"`
	ClientID       string    `json:"client_id"`
	Type           string    `json:"type"`
	Total          string    `json:"total"`
	Response       string    `json:"response"`
	ProcReturnCode string    `json:"proc_return_code"`
	Rule           string    `json:"rule,omitempty"`
	TrackID        string    `json:"track_id,omitempty"`
	Time           time.Time `json:"time"`
}

type CallbackEvent struct {
	Event         string    `json:"event"`
	OrderID       string    `json:"order_id"`
	SystemTransID string    `json:"system_trans_id"`
	URL           string    `json:"url"`
	Outcome       string    `json:"outcome"`
	StatusCode    int       `json:"status_code,omitempty"`
	Error         string    `json:"error,omitempty"`
	DurationMS    int64     `json:"duration_ms"`
	TrackID       string    `json:"track_id,omitempty"`
	Time          time.Time `json:"time"`
}

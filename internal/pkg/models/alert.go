package models

import "time"

// AlertStatus represents the current status of an emergency alert
type AlertStatus string

const (
	AlertStatusActive             AlertStatus = "active"
	AlertStatusInvestigating      AlertStatus = "investigating"
	AlertStatusAwaitingValidation AlertStatus = "awaiting_validation"
	AlertStatusResolved           AlertStatus = "resolved"
	AlertStatusFalseAlarm         AlertStatus = "false_alarm"
)

// IsTerminal reports whether the status is final. Terminal alerts are
// retained for audit and never mutated again.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// TriggerKind identifies how the subject raised the alert
type TriggerKind string

const (
	TriggerManual TriggerKind = "manual"
	TriggerVoice  TriggerKind = "voice"
)

// Alert represents an emergency alert raised by a subject
type Alert struct {
	ID               string      `json:"alert_id" db:"id"`
	SubjectID        string      `json:"subject_id" db:"subject_id"`
	Status           AlertStatus `json:"status" db:"status"`
	TriggerKind      TriggerKind `json:"trigger_kind" db:"trigger_kind"`
	OperatorID       string      `json:"operator_id,omitempty" db:"operator_id"`
	InitialLatitude  float64     `json:"initial_latitude" db:"initial_latitude"`
	InitialLongitude float64     `json:"initial_longitude" db:"initial_longitude"`
	EvidenceRef      string      `json:"evidence_ref,omitempty" db:"evidence_ref"`
	TerminationNote  string      `json:"termination_reason,omitempty" db:"termination_reason"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	ClaimedAt        *time.Time  `json:"claimed_at,omitempty" db:"claimed_at"`
	ResolvedAt       *time.Time  `json:"resolved_at,omitempty" db:"resolved_at"`
}

// CreateAlertRequest is the payload for raising a new alert
type CreateAlertRequest struct {
	TriggerKind TriggerKind `json:"trigger_kind"`
	Position    *Position   `json:"position,omitempty"`
}

// TerminationRequest is the subject's request to end an active alert.
// Both fields are mandatory; the protocol forces an auditable trail
// before the alert leaves the desk's radar.
type TerminationRequest struct {
	EvidenceRef string `json:"evidence_ref"`
	Reason      string `json:"reason"`
}

// ValidatorIdentity is the audit block recorded when a desk operator
// (or an authorized third party) confirms a termination request.
type ValidatorIdentity struct {
	Rank      string `json:"rank"`
	Name      string `json:"name"`
	BadgeID   string `json:"badge_id"`
	Phone     string `json:"phone,omitempty"`
	Battalion string `json:"battalion,omitempty"`
}

// ValidateTerminationRequest carries the token submitted by a validator
type ValidateTerminationRequest struct {
	TokenInput string            `json:"token"`
	Validator  ValidatorIdentity `json:"validator"`
}

// IncidentReport is the structured report attached on a desk-side close
type IncidentReport struct {
	ID          string      `json:"report_id" db:"id"`
	AlertID     string      `json:"alert_id" db:"alert_id"`
	OperatorID  string      `json:"operator_id" db:"operator_id"`
	ReferenceID string      `json:"reference_id" db:"reference_id"`
	Summary     string      `json:"summary" db:"summary"`
	Outcome     AlertStatus `json:"outcome" db:"outcome"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// CloseAlertRequest is the desk-side direct resolution payload
type CloseAlertRequest struct {
	ReferenceID string      `json:"reference_id"`
	Summary     string      `json:"summary"`
	Outcome     AlertStatus `json:"outcome"` // resolved or false_alarm
}

// AlertStatusEvent is published on every committed status transition
type AlertStatusEvent struct {
	AlertID    string      `json:"alert_id"`
	SubjectID  string      `json:"subject_id"`
	OldStatus  AlertStatus `json:"old_status"`
	NewStatus  AlertStatus `json:"new_status"`
	OperatorID string      `json:"operator_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// AlertCreatedEvent is published when a subject raises a new alert
type AlertCreatedEvent struct {
	AlertID     string      `json:"alert_id"`
	SubjectID   string      `json:"subject_id"`
	TriggerKind TriggerKind `json:"trigger_kind"`
	Position    Position    `json:"position"`
	CreatedAt   time.Time   `json:"created_at"`
}

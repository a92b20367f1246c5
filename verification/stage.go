// Package verification implements the three-stage partner approval pipeline:
// online KYC, company document verification, and in-person verification.
// Each stage carries its own legacy wire codes; this package keeps them at
// the boundary and works with a single status enum everywhere else.
package verification

import (
	"errors"
	"shata-admin/models"
)

// Status is the normalized state of one verification stage.
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusReuploadRequested
	StatusDeclined
)

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusReuploadRequested:
		return "reuploadRequested"
	case StatusDeclined:
		return "declined"
	default:
		return "pending"
	}
}

// Resolved reports whether the stage has been acted on at all.
func (s Status) Resolved() bool {
	return s != StatusPending
}

// Terminal reports whether further standard-authority transitions are blocked.
// A reupload request is not terminal: the stage is re-decided after the
// partner uploads again.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDeclined
}

// Codes holds the legacy wire codes one stage writes to the partner record.
// An empty ReuploadRequested means the stage has no reupload flow.
type Codes struct {
	Approved          string
	ReuploadRequested string
	Declined          string
}

// Stage describes one step of the pipeline.
type Stage struct {
	Name        string
	StatusField string // column on the partner record
	Codes       Codes
	// Only the KYC stage lets the reviewer point at individual documents
	// (video, Aadhar, PAN) when requesting a reupload or declining.
	AllowsDocumentTags bool
}

var stages = [...]Stage{
	{
		Name:               "Online KYC",
		StatusField:        "kyc_status",
		Codes:              Codes{Approved: "AKYC", ReuploadRequested: "RKYC", Declined: "DKYC"},
		AllowsDocumentTags: true,
	},
	{
		Name:        "Company Verification",
		StatusField: "cv_status",
		Codes:       Codes{Approved: "ACV", ReuploadRequested: "RCV", Declined: "DCV"},
	},
	{
		Name:        "In-person Verification",
		StatusField: "ipv_status",
		Codes:       Codes{Approved: "approved", Declined: "decline"},
	},
}

// StageCount is the fixed length of the pipeline.
const StageCount = len(stages)

var ErrUnknownStage = errors.New("unknown verification stage")

// StageAt returns the descriptor for a stage index.
func StageAt(index int) (Stage, error) {
	if index < 0 || index >= StageCount {
		return Stage{}, ErrUnknownStage
	}
	return stages[index], nil
}

// Stages returns a copy of the full ordered registry.
func Stages() []Stage {
	out := make([]Stage, StageCount)
	copy(out[:], stages[:])
	return out
}

// Decode maps a stored wire code to the normalized status. The second return
// is false for codes this stage never writes.
func (s Stage) Decode(code string) (Status, bool) {
	switch code {
	case "", "Pending":
		return StatusPending, true
	case s.Codes.Approved:
		return StatusApproved, true
	case s.Codes.Declined:
		return StatusDeclined, true
	}
	if s.Codes.ReuploadRequested != "" && code == s.Codes.ReuploadRequested {
		return StatusReuploadRequested, true
	}
	return StatusPending, false
}

// CodeOf reads this stage's raw status code off a partner record.
func (s Stage) CodeOf(p *models.Partner) string {
	switch s.StatusField {
	case "kyc_status":
		return p.KycStatus
	case "cv_status":
		return p.CvStatus
	default:
		return p.IpvStatus
	}
}

// StatusOf decodes this stage's current status on a partner record. Unknown
// codes read as pending so a corrupt record never unlocks later stages.
func (s Stage) StatusOf(p *models.Partner) Status {
	status, ok := s.Decode(s.CodeOf(p))
	if !ok {
		return StatusPending
	}
	return status
}

package verification

import (
	"errors"
	"fmt"
	"strings"

	"shata-admin/models"

	"gorm.io/gorm"
)

// Outcome is the decision an operator takes on one stage.
type Outcome string

const (
	OutcomeApprove         Outcome = "approve"
	OutcomeRequestReupload Outcome = "reupload"
	OutcomeDecline         Outcome = "decline"
)

var (
	ErrPartnerNotFound           = errors.New("partner not found")
	ErrStageLocked               = errors.New("stage is locked")
	ErrReasonRequired            = errors.New("reason is required")
	ErrDocumentSelectionRequired = errors.New("document selection is required")
	ErrAlreadyResolved           = errors.New("stage is already resolved")
	ErrOutcomeUnsupported        = errors.New("outcome not supported on this stage")
	ErrVersionConflict           = errors.New("partner record was modified by another session")
	ErrStoreUnavailable          = errors.New("partner store unavailable")
)

// Executor applies stage decisions to partner records. Every successful call
// is exactly one UPDATE; every failure path writes nothing.
type Executor struct {
	DB *gorm.DB
}

// Apply runs one decision on one stage of one partner. The reason is
// mandatory for reupload and decline outcomes; documents narrow the reason to
// specific artifacts on stages that support tagging. The write is guarded by
// the record's lock version, so a concurrent decision from another session
// fails with ErrVersionConflict instead of silently winning.
func (e Executor) Apply(partnerID uint, stageIndex int, outcome Outcome, reason string, documents []string, auth Authority) (*models.Partner, error) {
	stage, err := StageAt(stageIndex)
	if err != nil {
		return nil, err
	}

	var partner models.Partner
	if err := e.DB.First(&partner, partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	accessible, err := StageAccessible(&partner, stageIndex, auth)
	if err != nil {
		return nil, err
	}
	if !accessible {
		return nil, ErrStageLocked
	}

	code, err := stage.codeFor(outcome)
	if err != nil {
		return nil, err
	}

	if outcome == OutcomeRequestReupload || outcome == OutcomeDecline {
		if strings.TrimSpace(reason) == "" {
			return nil, ErrReasonRequired
		}
		if stage.AllowsDocumentTags && len(documents) == 0 {
			return nil, ErrDocumentSelectionRequired
		}
	}

	if stage.StatusOf(&partner).Terminal() && auth != AuthorityPrivileged {
		return nil, ErrAlreadyResolved
	}

	updates := map[string]interface{}{
		stage.StatusField: code,
		"status":          code, // legacy mirror for older consumers
		"lock_version":    partner.LockVersion + 1,
	}
	if outcome == OutcomeRequestReupload || outcome == OutcomeDecline {
		updates["reason"] = composeReason(stage, documents, reason)
	}

	res := e.DB.Model(&models.Partner{}).
		Where("id = ? AND lock_version = ?", partner.ID, partner.LockVersion).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrVersionConflict
	}

	if err := e.DB.First(&partner, partnerID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &partner, nil
}

func (s Stage) codeFor(outcome Outcome) (string, error) {
	switch outcome {
	case OutcomeApprove:
		return s.Codes.Approved, nil
	case OutcomeDecline:
		return s.Codes.Declined, nil
	case OutcomeRequestReupload:
		if s.Codes.ReuploadRequested == "" {
			return "", ErrOutcomeUnsupported
		}
		return s.Codes.ReuploadRequested, nil
	}
	return "", ErrOutcomeUnsupported
}

// composeReason prefixes the free-text reason with the affected document
// tags, e.g. "AADHAR, PANCARD : blurry image".
func composeReason(stage Stage, documents []string, reason string) string {
	reason = strings.TrimSpace(reason)
	if !stage.AllowsDocumentTags || len(documents) == 0 {
		return reason
	}
	return strings.Join(documents, ", ") + " : " + reason
}

package verification

import (
	"shata-admin/models"
)

// Authority is the caller's privilege level for the current session.
type Authority int

const (
	AuthorityStandard Authority = iota
	// AuthorityPrivileged bypasses stage gating and may re-decide stages
	// that are already approved or declined. Granted through the override
	// challenge, carried in the session token.
	AuthorityPrivileged
)

// StageAccessible reports whether a stage can currently be entered.
// Stage 0 is always open. Privileged callers may enter any stage. Standard
// callers may enter stage i only when every earlier stage is approved; a
// decline or pending reupload anywhere before it keeps the pipeline locked.
func StageAccessible(p *models.Partner, index int, auth Authority) (bool, error) {
	if index < 0 || index >= StageCount {
		return false, ErrUnknownStage
	}
	if index == 0 || auth == AuthorityPrivileged {
		return true, nil
	}
	for i := 0; i < index; i++ {
		if stages[i].StatusOf(p) != StatusApproved {
			return false, nil
		}
	}
	return true, nil
}

// BlockingStage returns the earliest stage before index that is not yet
// approved, or -1 when nothing blocks. Used to tell the operator which stage
// must resolve first.
func BlockingStage(p *models.Partner, index int) int {
	if index <= 0 || index >= StageCount {
		return -1
	}
	for i := 0; i < index; i++ {
		if stages[i].StatusOf(p) != StatusApproved {
			return i
		}
	}
	return -1
}

package pricing

import "github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"

// BlockReason names the violated mandatory precondition when an evaluation
// is blocked. A blocked quote always has amount zero, but the reverse does
// not hold; callers must check Blocked, not the amount.

type BlockReason string

const (
	BlockReasonNone         BlockReason = ""
	BlockReasonICloudLocked BlockReason = "icloud_locked"
	BlockReasonIMEIBlocked  BlockReason = "imei_blocked"
)

// IsCompliant reports whether the device passes the mandatory legal/policy
// preconditions for sale.
func IsCompliant(input entities.ValuationInput) bool {
	return input.ICloudFree && input.IMEIClean
}

// ComplianceReason returns the first violated precondition, or
// BlockReasonNone for a compliant input. iCloud lock is checked first; a
// device failing both is reported as iCloud-locked.
func ComplianceReason(input entities.ValuationInput) BlockReason {
	if !input.ICloudFree {
		return BlockReasonICloudLocked
	}
	if !input.IMEIClean {
		return BlockReasonIMEIBlocked
	}
	return BlockReasonNone
}

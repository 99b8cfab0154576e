package enum

// CommissionMode records which branch of the fee schedule produced a commission
type CommissionMode string

const (
	CommissionModeFlat       CommissionMode = "FLAT"
	CommissionModePercentage CommissionMode = "PERCENTAGE"
	CommissionModeSlab       CommissionMode = "SLAB"
	CommissionModeManual     CommissionMode = "MANUAL"
	// CommissionModeNone means no fee rule was configured for the service
	CommissionModeNone CommissionMode = "NONE"
)

func (m CommissionMode) String() string {
	return string(m)
}

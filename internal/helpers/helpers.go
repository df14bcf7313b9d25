package helpers

import "github.com/Ashutosh-Ahirwar/base-activity/internal/constants"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = constants.TestEnvironment
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	default:
		return false
	}
}

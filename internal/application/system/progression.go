package system

import "time"

// Progression tuning
const (
	LinesPerLevel   = 10
	BaseDropSpeedMs = 1000
	DropSpeedStepMs = 100
	MinDropSpeedMs  = 100
)

// lineClearPoints is indexed by the number of rows cleared at once
var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// CalculateScore returns the points for clearing linesCleared rows at once on level.
// Only 0 through 4 rows is a meaningful input; anything else scores nothing.
func CalculateScore(linesCleared, level int) int {
	if linesCleared < 0 || linesCleared >= len(lineClearPoints) {
		return 0
	}
	return lineClearPoints[linesCleared] * level
}

// CalculateLevel returns the level reached after totalLinesCleared rows
func CalculateLevel(totalLinesCleared int) int {
	return 1 + totalLinesCleared/LinesPerLevel
}

// GetDropSpeed returns the automatic fall interval for level in milliseconds
func GetDropSpeed(level int) int {
	return max(MinDropSpeedMs, BaseDropSpeedMs-(level-1)*DropSpeedStepMs)
}

// DropInterval is GetDropSpeed as a time.Duration
func DropInterval(level int) time.Duration {
	return time.Duration(GetDropSpeed(level)) * time.Millisecond
}

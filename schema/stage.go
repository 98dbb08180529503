package schema

import "strconv"

// StageID identifies one step of the analysis pipeline, starting at 1
type StageID int

const (
	StageExtraction StageID = iota + 1
	StageDescription
	StageHealthTips
	StageAssessment
	StageAlternatives
)

// StageCount is the number of pipeline stages
const StageCount = int(StageAlternatives)

func (s StageID) String() string {
	switch s {
	case StageExtraction:
		return "extraction"
	case StageDescription:
		return "description"
	case StageHealthTips:
		return "health_tips"
	case StageAssessment:
		return "assessment"
	case StageAlternatives:
		return "alternatives"
	}
	return "stage_" + strconv.Itoa(int(s))
}

package models

// Stage enumerates the pipeline stages of a real-estate
// transaction case. Values are stable wire integers.
type Stage int

const (
	StageSetup Stage = iota
	StageContractPreparing
	StageContractSigning
	StageMortgage
	StageClosing
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{
	StageSetup,
	StageContractPreparing,
	StageContractSigning,
	StageMortgage,
	StageClosing,
}

func (s Stage) Valid() bool {
	return s >= StageSetup && s <= StageClosing
}

func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "SETUP"
	case StageContractPreparing:
		return "CONTRACT_PREPARING"
	case StageContractSigning:
		return "CONTRACT_SIGNING"
	case StageMortgage:
		return "MORTGAGE"
	case StageClosing:
		return "CLOSING"
	default:
		return "UNKNOWN"
	}
}

// TaskType enumerates the kinds of task a template can spawn.
type TaskType int

const (
	TaskTypeAction TaskType = iota
	TaskTypeContact
	TaskTypeUpload
)

func (t TaskType) Valid() bool {
	return t >= TaskTypeAction && t <= TaskTypeUpload
}

func (t TaskType) String() string {
	switch t {
	case TaskTypeAction:
		return "ACTION"
	case TaskTypeContact:
		return "CONTACT"
	case TaskTypeUpload:
		return "UPLOAD"
	default:
		return "UNKNOWN"
	}
}

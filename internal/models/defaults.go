package models

// DefaultTask is one entry of the seeded per-stage task chain.
type DefaultTask struct {
	TaskType  TaskType
	TaskName  string
	Templates []string
}

// StageDefaultTasks holds the system-seeded task definitions per
// stage, in chain order. Template titles may carry interpolation
// placeholders resolved when a task is instantiated for a case.
var StageDefaultTasks = map[Stage][]DefaultTask{
	StageSetup: {
		{TaskType: TaskTypeAction, TaskName: "Case set up"},
		{TaskType: TaskTypeUpload, TaskName: "Inspection report"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Confirm case details",
			Templates: []string{"[IMPORTANT] FEK Notice to Purchaser", "Default Template"},
		},
	},
	StageContractPreparing: {
		{TaskType: TaskTypeUpload, TaskName: "Initial contract"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Schedule contract review with client",
			Templates: []string{"%(caseObj.premisesName)s Contract review"},
		},
		{TaskType: TaskTypeAction, TaskName: "Contract review"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Collect signed contract and deposit from client",
			Templates: []string{"%(caseObj.premisesName)s Contract Signing and Deposit"},
		},
		{TaskType: TaskTypeUpload, TaskName: "Initial signed contract"},
	},
	StageContractSigning: {
		{TaskType: TaskTypeUpload, TaskName: "Deposit"},
		{TaskType: TaskTypeAction, TaskName: "Confirm wire info and send the deposit"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Inform the seller and request the fully signed contract",
			Templates: []string{"[IMPORTANT] %(caseObj.premisesName)s"},
		},
		{TaskType: TaskTypeUpload, TaskName: "Fully signed contract"},
	},
	StageMortgage: {
		// mortgage tasks
		{TaskType: TaskTypeAction, TaskName: "Set up mortgage due date"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Inform the client about the upcoming timeline",
			Templates: []string{"[FEK Notice] %(caseObj.premisesName)s"},
		},
		{TaskType: TaskTypeUpload, TaskName: "Commitment letter"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Send the commitment to title company and seller",
			Templates: []string{"[Committment] %(caseObj.premisesName)s"},
		},
		{TaskType: TaskTypeUpload, TaskName: "Bank CTC"},
		// title tasks
		{TaskType: TaskTypeAction, TaskName: "Order title"},
		{TaskType: TaskTypeUpload, TaskName: "Title report"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Confirm the title with client",
			Templates: []string{"Default Template"},
		},
		{TaskType: TaskTypeUpload, TaskName: "All cleared title"},
	},
	StageClosing: {
		{TaskType: TaskTypeAction, TaskName: "Schedule closing date"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Inform closing information to everyone engaged",
			Templates: []string{"[IMPORTANT] Closing Confirmation send to all parties"},
		},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Calculate the checks needed and inform the client",
			Templates: []string{"[IMPORTANT] Proposed Contract of Sale and Rider for Review and Signature"},
		},
		{TaskType: TaskTypeAction, TaskName: "Closing event"},
		{TaskType: TaskTypeUpload, TaskName: "All closing files"},
		{
			TaskType:  TaskTypeContact,
			TaskName:  "Collect feedbacks from the client",
			Templates: []string{"Default Template"},
		},
	},
}

package models

import "time"

var (
	TaskTemplateTable = "TaskTemplate"
)

// TaskTemplate is a reusable task definition owned by a single
// creator. Templates belonging to the same (stage, creator)
// partition form a doubly-linked list through PrevTTID/NextTTID.
type TaskTemplate struct {
	TTID      string    `dynamodbav:"TTID" json:"ttid"`
	TaskName  string    `dynamodbav:"TaskName" json:"taskName"`
	CreatorID string    `dynamodbav:"CreatorId" json:"creatorId"`
	Stage     Stage     `dynamodbav:"Stage" json:"stage"`
	TaskType  TaskType  `dynamodbav:"TaskType" json:"taskType"`
	PrevTTID  *string   `dynamodbav:"PrevTTID" json:"prevTtid"`
	NextTTID  *string   `dynamodbav:"NextTTID" json:"nextTtid"`
	IsDefault bool      `dynamodbav:"IsDefault" json:"isDefault"`
	Templates []string  `dynamodbav:"Templates" json:"templates"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"updatedAt"`
}

type TaskTemplates []*TaskTemplate

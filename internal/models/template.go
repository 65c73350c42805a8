package models

import "time"

var (
	TemplateTable = "Template"
)

// Template is an email template keyed by its title.
type Template struct {
	TemplateTitle   string    `dynamodbav:"TemplateTitle" json:"templateTitle"`
	TemplateContent string    `dynamodbav:"TemplateContent" json:"templateContent"`
	CreatedAt       time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	UpdatedAt       time.Time `dynamodbav:"UpdatedAt" json:"updatedAt"`
}

type Templates []*Template

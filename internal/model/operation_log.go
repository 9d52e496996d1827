package model

import "time"

// OperationLog records one admin mutation for the audit trail.
type OperationLog struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"admin_id"`
	AdminName  string    `json:"admin_name"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Detail     string    `json:"detail"`
	IP         string    `json:"ip"`
	CreatedAt  time.Time `json:"created_at"`
}

// Operation log actions.
const (
	ActionCreate    = "CREATE"
	ActionUpdate    = "UPDATE"
	ActionDelete    = "DELETE"
	ActionPublish   = "PUBLISH"
	ActionUnpublish = "UNPUBLISH"
	ActionReorder   = "REORDER"
	ActionReplace   = "REPLACE"
	ActionExport    = "EXPORT"
	ActionLogin     = "LOGIN"
	ActionLogout    = "LOGOUT"
)

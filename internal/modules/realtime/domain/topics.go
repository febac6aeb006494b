package domain

import "strings"

const (
	SystemEntity = "system"
	OrdersEntity = "orders"

	TopicSystemConnected = SystemEntity + ".connected"

	ActionConnected = "connected"
	ActionError     = "error"
	ActionList      = "list"
	ActionCreated   = "created"
	ActionUpdated   = "updated"
)

// ListTopic returns the canonical list topic for the given entity.
func ListTopic(entity string) string {
	return buildEntityTopic(entity, ActionList)
}

// CreatedTopic returns the canonical created topic for the given entity.
func CreatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionCreated)
}

// UpdatedTopic returns the canonical updated topic for the given entity.
func UpdatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionUpdated)
}

// ErrorTopic returns the canonical error topic for the given entity.
func ErrorTopic(entity string) string {
	return buildEntityTopic(entity, ActionError)
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}

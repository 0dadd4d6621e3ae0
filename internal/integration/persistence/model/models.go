package model

// All returns every model managed by schema migration.
func All() []interface{} {
	return []interface{}{
		&GoalModel{},
		&UserProgressModel{},
		&NotificationModel{},
	}
}

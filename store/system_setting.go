package store

// SystemSettingSchemaVersion is the setting name holding the current schema
// version of the database.
const SystemSettingSchemaVersion = "schema_version"

// SystemSetting is a named instance-level setting.
type SystemSetting struct {
	Name  string
	Value string
}

// FindSystemSetting specifies the conditions for finding system settings.
type FindSystemSetting struct {
	Name *string
}

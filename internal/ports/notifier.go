package ports

// Notifier shows a short user-facing message
type Notifier interface {
	Notify(msg string)
}

// SettingsStore holds persisted plugin settings
type SettingsStore interface {
	SectionHeader() string
	SetSectionHeader(header string) error
}

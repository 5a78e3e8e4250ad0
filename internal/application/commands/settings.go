package commands

import (
	"context"
	"fmt"
	"strings"

	"forwardtask/internal/application"
	"forwardtask/internal/ports"
)

// SectionHeaderResult contains the configured section header
type SectionHeaderResult struct {
	Header  string
	Message string
}

// GetSectionHeaderCommand reads the section header setting
type GetSectionHeaderCommand struct {
	settings ports.SettingsStore
}

// NewGetSectionHeaderCommand creates a new GetSectionHeaderCommand
func NewGetSectionHeaderCommand(settings ports.SettingsStore) *GetSectionHeaderCommand {
	return &GetSectionHeaderCommand{settings: settings}
}

// Execute runs the get section header command
func (c *GetSectionHeaderCommand) Execute(ctx context.Context) (*SectionHeaderResult, error) {
	header := c.settings.SectionHeader()
	msg := "No section header: tasks are appended at the end of the note"
	if strings.TrimSpace(header) != "" {
		msg = fmt.Sprintf("Section header: %s", header)
	}
	return &SectionHeaderResult{Header: header, Message: msg}, nil
}

// SetSectionHeaderCommand updates the section header setting
type SetSectionHeaderCommand struct {
	settings ports.SettingsStore
	Header   string
}

// NewSetSectionHeaderCommand creates a new SetSectionHeaderCommand
func NewSetSectionHeaderCommand(settings ports.SettingsStore, header string) *SetSectionHeaderCommand {
	return &SetSectionHeaderCommand{
		settings: settings,
		Header:   header,
	}
}

// Validate checks the header is usable
func (c *SetSectionHeaderCommand) Validate() error {
	return application.ValidateSectionHeader(c.Header)
}

// Execute runs the set section header command
func (c *SetSectionHeaderCommand) Execute(ctx context.Context) (*SectionHeaderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.settings.SetSectionHeader(c.Header); err != nil {
		return nil, fmt.Errorf("failed to save section header: %w", err)
	}

	msg := "Section header cleared"
	if strings.TrimSpace(c.Header) != "" {
		msg = fmt.Sprintf("Section header set to %s", c.Header)
	}
	return &SectionHeaderResult{Header: c.Header, Message: msg}, nil
}

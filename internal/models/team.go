package models

import (
	"strings"

	"gorm.io/gorm"
)

// Team represents a team or department that costs, expenses and
// revenues are attributed to.
type Team struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex:team_name"`
	Note     string
	Archived bool
}

// BeforeSave trims whitespace and verifies that the name is set.
func (t *Team) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	if t.Name == "" {
		return ErrTeamNameRequired
	}

	return nil
}

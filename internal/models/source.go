package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SourceFields are the fields shared by all business records that can
// own an allocation.
//
// Exactly one of two states holds for every record: it is split
// across teams (AllocationEnabled with at least one allocation
// record) or it is attributed wholly to one team (TeamID set). The
// exclusivity is verified on every save.
type SourceFields struct {
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date              time.Time
	Note              string
	AllocationEnabled bool
	Team              *Team      `json:"-"`
	TeamID            *uuid.UUID // Must be nil when the record is split across teams
}

// normalize trims strings, applies the date default and verifies the
// fields shared by all source records.
func (s *SourceFields) normalize() error {
	s.Note = strings.TrimSpace(s.Note)

	if s.Amount.IsNegative() {
		return ErrSourceAmountNegative
	}

	if s.Note == "" {
		return ErrSourceNoteRequired
	}

	if s.AllocationEnabled && s.TeamID != nil {
		return ErrSourceTeamWithAllocation
	}

	if !s.AllocationEnabled && s.TeamID == nil {
		return ErrSourceTeamRequired
	}

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	return nil
}

// checkTeam verifies the team reference when the record is attributed
// to a single team.
func (s *SourceFields) checkTeam(tx *gorm.DB) error {
	if s.TeamID == nil {
		return nil
	}

	return tx.First(&Team{}, *s.TeamID).Error
}

// checkUpdate verifies the state an update produces. Gorm hooks run
// on the stored record, only the statement destination carries the
// new values.
func (s SourceFields) checkUpdate(tx *gorm.DB, toSave SourceFields) error {
	if tx.Statement.Changed("Amount") && toSave.Amount.IsNegative() {
		return ErrSourceAmountNegative
	}

	if tx.Statement.Changed("Note") {
		note := strings.TrimSpace(toSave.Note)
		if note == "" {
			return ErrSourceNoteRequired
		}

		tx.Statement.SetColumn("Note", note)
	}

	merged := s
	if tx.Statement.Changed("AllocationEnabled") {
		merged.AllocationEnabled = toSave.AllocationEnabled
	}

	if tx.Statement.Changed("TeamID") {
		merged.TeamID = toSave.TeamID
	}

	if merged.AllocationEnabled && merged.TeamID != nil {
		return ErrSourceTeamWithAllocation
	}

	if !merged.AllocationEnabled && merged.TeamID == nil {
		return ErrSourceTeamRequired
	}

	return merged.checkTeam(tx)
}

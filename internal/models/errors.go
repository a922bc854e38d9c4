package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Team errors
var (
	ErrTeamNameRequired  = errors.New("the team name must be set")
	ErrTeamNameNotUnique = errors.New("the team name must be unique")
)

// AllocationConfig errors
var (
	ErrConfigRatioOutOfRange         = errors.New("the ratio of an allocation config must be between 0 and 100")
	ErrNoEnabledAllocationConfig     = errors.New("no enabled allocation config exists, configure the allocation policy before splitting records")
	ErrAllocationConfigTeamNotUnique = errors.New("only one allocation config can exist per team")
)

// AllocationRecord errors
var (
	ErrSourceTypeInvalid  = errors.New("the specified source record type is invalid")
	ErrAllocationReplace  = errors.New("replacing the allocation records for the record failed")
	ErrAllocationNegative = errors.New("allocation record amounts must not be negative")
)

// Source record errors
var (
	ErrSourceAmountNegative   = errors.New("the amount must not be negative")
	ErrSourceNoteRequired     = errors.New("the description must be set")
	ErrSourceCategoryRequired = errors.New("the category must be set")
	ErrSourceTitleRequired    = errors.New("the title must be set")

	// A record is either split across teams or attributed to exactly
	// one team, never both and never neither.
	ErrSourceTeamWithAllocation = errors.New("a record that is split across teams cannot be attributed to a single team")
	ErrSourceTeamRequired       = errors.New("a record that is not split across teams must be attributed to a team")
)

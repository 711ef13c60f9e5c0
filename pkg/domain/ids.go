package domain

import (
	"github.com/google/uuid"

	dErrors "botanica/pkg/domain-errors"
)

// Typed identifiers keep a SpeciesID from being passed where a GenusID is
// expected. All of them are UUIDs underneath.
type (
	FamilyID            uuid.UUID
	GenusID             uuid.UUID
	SpeciesID           uuid.UUID
	CultivationRecordID uuid.UUID
	OccurrenceID        uuid.UUID
)

func (id FamilyID) String() string            { return uuid.UUID(id).String() }
func (id GenusID) String() string             { return uuid.UUID(id).String() }
func (id SpeciesID) String() string           { return uuid.UUID(id).String() }
func (id CultivationRecordID) String() string { return uuid.UUID(id).String() }
func (id OccurrenceID) String() string        { return uuid.UUID(id).String() }

func (id FamilyID) IsNil() bool            { return uuid.UUID(id) == uuid.Nil }
func (id GenusID) IsNil() bool             { return uuid.UUID(id) == uuid.Nil }
func (id SpeciesID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id CultivationRecordID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id OccurrenceID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }

func (id FamilyID) MarshalText() ([]byte, error)            { return uuid.UUID(id).MarshalText() }
func (id GenusID) MarshalText() ([]byte, error)             { return uuid.UUID(id).MarshalText() }
func (id SpeciesID) MarshalText() ([]byte, error)           { return uuid.UUID(id).MarshalText() }
func (id CultivationRecordID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id OccurrenceID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }

func (id *FamilyID) UnmarshalText(b []byte) error            { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *GenusID) UnmarshalText(b []byte) error             { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *SpeciesID) UnmarshalText(b []byte) error           { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *CultivationRecordID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *OccurrenceID) UnmarshalText(b []byte) error        { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseFamilyID parses a non-nil UUID string into a FamilyID.
func ParseFamilyID(s string) (FamilyID, error) {
	u, err := parseUUID(s, "family")
	return FamilyID(u), err
}

// ParseGenusID parses a non-nil UUID string into a GenusID.
func ParseGenusID(s string) (GenusID, error) {
	u, err := parseUUID(s, "genus")
	return GenusID(u), err
}

// ParseSpeciesID parses a non-nil UUID string into a SpeciesID.
func ParseSpeciesID(s string) (SpeciesID, error) {
	u, err := parseUUID(s, "species")
	return SpeciesID(u), err
}

// ParseCultivationRecordID parses a non-nil UUID string into a CultivationRecordID.
func ParseCultivationRecordID(s string) (CultivationRecordID, error) {
	u, err := parseUUID(s, "cultivation record")
	return CultivationRecordID(u), err
}

// ParseOccurrenceID parses a non-nil UUID string into an OccurrenceID.
func ParseOccurrenceID(s string) (OccurrenceID, error) {
	u, err := parseUUID(s, "occurrence")
	return OccurrenceID(u), err
}

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id must not be nil")
	}
	return u, nil
}

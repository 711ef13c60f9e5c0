package models

import (
	dErrors "botanica/pkg/domain-errors"
)

// BasisOfRecord describes how an occurrence record came to exist.
type BasisOfRecord string

const (
	BasisPreservedSpecimen  BasisOfRecord = "PreservedSpecimen"
	BasisFossilSpecimen     BasisOfRecord = "FossilSpecimen"
	BasisLivingSpecimen     BasisOfRecord = "LivingSpecimen"
	BasisHumanObservation   BasisOfRecord = "HumanObservation"
	BasisMachineObservation BasisOfRecord = "MachineObservation"
	BasisMaterialSample     BasisOfRecord = "MaterialSample"
	BasisEvent              BasisOfRecord = "Event"
	BasisTaxon              BasisOfRecord = "Taxon"
	BasisOccurrence         BasisOfRecord = "Occurrence"
)

var basesOfRecord = set(BasisPreservedSpecimen, BasisFossilSpecimen, BasisLivingSpecimen,
	BasisHumanObservation, BasisMachineObservation, BasisMaterialSample, BasisEvent,
	BasisTaxon, BasisOccurrence)

func (b BasisOfRecord) IsValid() bool { return basesOfRecord[b] }

func (b *BasisOfRecord) UnmarshalText(text []byte) error {
	return parseInto(b, text, basesOfRecord, "basis_of_record")
}

// OccurrenceStatus records presence or absence at the location.
type OccurrenceStatus string

const (
	StatusPresent OccurrenceStatus = "present"
	StatusAbsent  OccurrenceStatus = "absent"
)

var occurrenceStatuses = set(StatusPresent, StatusAbsent)

func (s OccurrenceStatus) IsValid() bool { return occurrenceStatuses[s] }

func (s *OccurrenceStatus) UnmarshalText(text []byte) error {
	return parseInto(s, text, occurrenceStatuses, "occurrence_status")
}

// EstablishmentMeans is how the organism came to be at the location.
type EstablishmentMeans string

const (
	EstablishmentNative      EstablishmentMeans = "native"
	EstablishmentIntroduced  EstablishmentMeans = "introduced"
	EstablishmentNaturalised EstablishmentMeans = "naturalised"
	EstablishmentInvasive    EstablishmentMeans = "invasive"
	EstablishmentManaged     EstablishmentMeans = "managed"
	EstablishmentCultivated  EstablishmentMeans = "cultivated"
)

var establishmentMeans = set(EstablishmentNative, EstablishmentIntroduced, EstablishmentNaturalised,
	EstablishmentInvasive, EstablishmentManaged, EstablishmentCultivated)

func (e EstablishmentMeans) IsValid() bool { return establishmentMeans[e] }

func (e *EstablishmentMeans) UnmarshalText(text []byte) error {
	return parseInto(e, text, establishmentMeans, "establishment_means")
}

// TaxonomicStatus is the nomenclatural standing of a name.
type TaxonomicStatus string

const (
	TaxonomicAccepted              TaxonomicStatus = "accepted"
	TaxonomicSynonym               TaxonomicStatus = "synonym"
	TaxonomicDoubtfulSynonym       TaxonomicStatus = "doubtful"
	TaxonomicMisapplied            TaxonomicStatus = "misapplied"
	TaxonomicHomonym               TaxonomicStatus = "homonym"
	TaxonomicProvisionallyAccepted TaxonomicStatus = "provisionallyAccepted"
)

var taxonomicStatuses = set(TaxonomicAccepted, TaxonomicSynonym, TaxonomicDoubtfulSynonym,
	TaxonomicMisapplied, TaxonomicHomonym, TaxonomicProvisionallyAccepted)

func (t TaxonomicStatus) IsValid() bool { return taxonomicStatuses[t] }

func (t *TaxonomicStatus) UnmarshalText(text []byte) error {
	return parseInto(t, text, taxonomicStatuses, "taxonomic_status")
}

// TaxonRank is a level of the taxonomic hierarchy, kingdom first.
type TaxonRank string

const (
	RankKingdom    TaxonRank = "kingdom"
	RankPhylum     TaxonRank = "phylum"
	RankClass      TaxonRank = "class"
	RankOrder      TaxonRank = "order"
	RankFamily     TaxonRank = "family"
	RankGenus      TaxonRank = "genus"
	RankSpecies    TaxonRank = "species"
	RankSubspecies TaxonRank = "subspecies"
	RankVariety    TaxonRank = "variety"
	RankForm       TaxonRank = "form"
	RankCultivar   TaxonRank = "cultivar"
)

var rankOrder = []TaxonRank{RankKingdom, RankPhylum, RankClass, RankOrder, RankFamily,
	RankGenus, RankSpecies, RankSubspecies, RankVariety, RankForm, RankCultivar}

var taxonRanks = set(rankOrder...)

func (r TaxonRank) IsValid() bool { return taxonRanks[r] }

// Level is the depth of the rank, 0 for kingdom. Unknown ranks return -1.
func (r TaxonRank) Level() int {
	for i, rank := range rankOrder {
		if rank == r {
			return i
		}
	}
	return -1
}

func (r *TaxonRank) UnmarshalText(text []byte) error {
	return parseInto(r, text, taxonRanks, "taxon_rank")
}

// NomenclaturalCode is the rule set governing a name.
type NomenclaturalCode string

const (
	CodeICN   NomenclaturalCode = "ICN"
	CodeICZN  NomenclaturalCode = "ICZN"
	CodeICNP  NomenclaturalCode = "ICNP"
	CodeICVCN NomenclaturalCode = "ICVCN"
)

var nomenclaturalCodes = set(CodeICN, CodeICZN, CodeICNP, CodeICVCN)

func (c NomenclaturalCode) IsValid() bool { return nomenclaturalCodes[c] }

func (c *NomenclaturalCode) UnmarshalText(text []byte) error {
	return parseInto(c, text, nomenclaturalCodes, "nomenclatural_code")
}

func set[T ~string](values ...T) map[T]bool {
	out := make(map[T]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}

func parseInto[T ~string](dst *T, text []byte, known map[T]bool, field string) error {
	v := T(text)
	if !known[v] {
		return dErrors.Newf(dErrors.CodeValidation, "unknown %s %q", field, string(text))
	}
	*dst = v
	return nil
}

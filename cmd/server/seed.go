package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"botanica/internal/conservation/models"
	taxonomy "botanica/internal/taxonomy/models"
	"botanica/pkg/requestcontext"
)

// seedFile is the YAML layout accepted by "botanica seed".
type seedFile struct {
	Families    []seedFamily     `yaml:"families"`
	Assessments []seedAssessment `yaml:"assessments"`
}

type seedFamily struct {
	Name      string      `yaml:"name"`
	Authority string      `yaml:"authority"`
	Genera    []seedGenus `yaml:"genera"`
}

type seedGenus struct {
	Name      string        `yaml:"name"`
	Authority string        `yaml:"authority"`
	Species   []seedSpecies `yaml:"species"`
}

type seedSpecies struct {
	Epithet            string       `yaml:"epithet"`
	Authority          string       `yaml:"authority"`
	PublicationYear    *int         `yaml:"publication_year"`
	ConservationStatus *string      `yaml:"conservation_status"`
	Records            []seedRecord `yaml:"records"`
}

type seedRecord struct {
	GrowthStage string  `yaml:"growth_stage"`
	Cultivator  string  `yaml:"cultivator"`
	Notes       *string `yaml:"notes"`
}

type seedAssessment struct {
	ScientificName      string   `yaml:"scientific_name"`
	Category            string   `yaml:"category"`
	Criteria            *string  `yaml:"criteria"`
	AssessmentDate      string   `yaml:"assessment_date"`
	PopulationTrend     string   `yaml:"population_trend"`
	Threats             []string `yaml:"threats"`
	ConservationActions []string `yaml:"conservation_actions"`
	ActionsNeeded       []string `yaml:"actions_needed"`
	Assessor            *string  `yaml:"assessor"`
	Reviewer            *string  `yaml:"reviewer"`
}

func parseSeed(r io.Reader) (*seedFile, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

func (s seedAssessment) toAssessment() (models.Assessment, error) {
	name := models.CanonicalName(s.ScientificName)
	if name == "" {
		return models.Assessment{}, fmt.Errorf("assessment without scientific_name")
	}
	category, err := models.ParseCategory(s.Category)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%s: %w", name, err)
	}
	trend, err := models.ParsePopulationTrend(s.PopulationTrend)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%s: %w", name, err)
	}
	date, err := time.Parse(time.DateOnly, s.AssessmentDate)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%s: assessment_date must be YYYY-MM-DD: %w", name, err)
	}
	return models.Assessment{
		ScientificName:      name,
		Category:            category,
		Criteria:            s.Criteria,
		AssessmentDate:      date,
		PopulationTrend:     trend,
		Threats:             orEmpty(s.Threats),
		ConservationActions: orEmpty(s.ConservationActions),
		ActionsNeeded:       orEmpty(s.ActionsNeeded),
		Assessor:            s.Assessor,
		Reviewer:            s.Reviewer,
	}, nil
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func seedCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load taxa, cultivation records and assessment snapshots from YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			seed, err := parseSeed(f)
			if err != nil {
				return err
			}

			ctx := requestcontext.WithCurator(cmd.Context(), "seed")
			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireDatabase(); err != nil {
				return err
			}

			counts, err := a.seed(ctx, seed)
			if err != nil {
				return err
			}
			log.Info("seed complete",
				"families", counts.families,
				"genera", counts.genera,
				"species", counts.species,
				"records", counts.records,
				"assessments", counts.assessments,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

type seedCounts struct {
	families, genera, species, records, assessments int
}

// seed creates taxa through the taxonomy service so they are validated and
// audited, then writes every assessment snapshot in one transaction.
func (a *app) seed(ctx context.Context, seed *seedFile) (seedCounts, error) {
	var counts seedCounts
	for _, fam := range seed.Families {
		family, err := a.taxonomy.CreateFamily(ctx, &taxonomy.CreateFamilyRequest{Name: fam.Name, Authority: fam.Authority})
		if err != nil {
			return counts, fmt.Errorf("family %s: %w", fam.Name, err)
		}
		counts.families++

		for _, gen := range fam.Genera {
			genus, err := a.taxonomy.CreateGenus(ctx, &taxonomy.CreateGenusRequest{
				FamilyID: family.ID.String(), Name: gen.Name, Authority: gen.Authority,
			})
			if err != nil {
				return counts, fmt.Errorf("genus %s: %w", gen.Name, err)
			}
			counts.genera++

			for _, sp := range gen.Species {
				species, err := a.taxonomy.CreateSpecies(ctx, &taxonomy.CreateSpeciesRequest{
					GenusID:            genus.ID.String(),
					SpecificEpithet:    sp.Epithet,
					Authority:          sp.Authority,
					PublicationYear:    sp.PublicationYear,
					ConservationStatus: sp.ConservationStatus,
				})
				if err != nil {
					return counts, fmt.Errorf("species %s %s: %w", gen.Name, sp.Epithet, err)
				}
				counts.species++

				for _, rec := range sp.Records {
					_, err := a.taxonomy.AddCultivationRecord(ctx, species.ID, &taxonomy.AddRecordRequest{
						GrowthStage: rec.GrowthStage, Cultivator: rec.Cultivator, Notes: rec.Notes,
					})
					if err != nil {
						return counts, fmt.Errorf("record for %s: %w", species.ScientificName(), err)
					}
					counts.records++
				}
			}
		}
	}

	assessments := make([]models.Assessment, 0, len(seed.Assessments))
	for _, sa := range seed.Assessments {
		assessment, err := sa.toAssessment()
		if err != nil {
			return counts, err
		}
		assessments = append(assessments, assessment)
	}
	if len(assessments) == 0 {
		return counts, nil
	}

	err := newPostgresTx(a.db).RunInTx(ctx, func(ctx context.Context) error {
		for _, assessment := range assessments {
			if err := a.snapshots.Upsert(ctx, assessment, requestcontext.Now(ctx)); err != nil {
				return fmt.Errorf("assessment %s: %w", assessment.ScientificName, err)
			}
		}
		return nil
	})
	if err != nil {
		return counts, err
	}
	counts.assessments = len(assessments)
	return counts, nil
}

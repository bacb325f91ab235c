package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ehr/flowsheet/internal/config"
	"github.com/ehr/flowsheet/internal/domain/chart"
	"github.com/ehr/flowsheet/internal/domain/encounter"
	"github.com/ehr/flowsheet/internal/domain/form"
	"github.com/ehr/flowsheet/internal/domain/medication"
	"github.com/ehr/flowsheet/internal/platform/db"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Inspect chart configuration",
	}

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse tab and link settings and print the resulting chart as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s chart.Settings
			s.Tabs, _ = cmd.Flags().GetString("tabs")
			s.Links, _ = cmd.Flags().GetString("links")
			s.Chronology, _ = cmd.Flags().GetString("chronology")
			offline, _ := cmd.Flags().GetBool("offline")
			formsFile, _ := cmd.Flags().GetString("forms")
			verbose, _ := cmd.Flags().GetBool("verbose")

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level)
			ctx := logger.WithContext(cmd.Context())

			if offline {
				forms, err := openStaticForms(formsFile)
				if err != nil {
					return err
				}
				return runChartParse(ctx, cmd.OutOrStdout(), form.NewResolver(forms, nil), s)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			tctx, release, err := db.WithTenant(ctx, pool, cfg.DefaultTenant)
			if err != nil {
				return err
			}
			defer release()

			resolver := form.NewResolver(form.NewFormRepoPG(pool), medication.NewDrugRepoPG(pool))
			return runChartParse(tctx, cmd.OutOrStdout(), resolver, s.WithFallback(cfg.ChartSettings()))
		},
	}
	parseCmd.Flags().String("tabs", "", "Tab definitions, e.g. \"a:Vitals:10|b:Admission:20:FIRST\"")
	parseCmd.Flags().String("links", "", "Link definitions, e.g. \"Home:/home|Labs:/labs\"")
	parseCmd.Flags().String("chronology", "", "Encounter ordering: asc or desc")
	parseCmd.Flags().Bool("offline", false, "Resolve forms from --forms instead of the database")
	parseCmd.Flags().String("forms", "", "YAML file listing forms for --offline")
	parseCmd.Flags().BoolP("verbose", "v", false, "Log skipped definitions")

	cmd.AddCommand(parseCmd)
	return cmd
}

type parseOutput struct {
	Chart               chart.Configuration `yaml:"chart"`
	EncountersAscending bool                `yaml:"encounters_ascending"`
}

func runChartParse(ctx context.Context, out io.Writer, forms chart.FormResolver, s chart.Settings) error {
	var cfg chart.Configuration
	if err := chart.Configure(ctx, &cfg, s, forms); err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(parseOutput{
		Chart:               cfg,
		EncountersAscending: encounter.ParseChronology(s.Chronology),
	}); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return enc.Close()
}

// staticForms is a form.Lookup over a fixed list, used for offline parsing.
type staticForms struct {
	byID   map[int]*form.Form
	byUUID map[string]*form.Form
}

type formEntry struct {
	ID              int    `yaml:"id"`
	UUID            string `yaml:"uuid"`
	Name            string `yaml:"name"`
	EncounterTypeID *int   `yaml:"encounter_type_id"`
}

func openStaticForms(path string) (*staticForms, error) {
	if path == "" {
		return loadStaticForms(nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open forms file: %w", err)
	}
	defer f.Close()
	return loadStaticForms(f)
}

// loadStaticForms reads a YAML document of the form
//
//	forms:
//	  - id: 10
//	    uuid: 3c1f...
//	    name: Vitals
//	    encounter_type_id: 5
//
// A nil reader yields an empty lookup.
func loadStaticForms(r io.Reader) (*staticForms, error) {
	s := &staticForms{byID: map[int]*form.Form{}, byUUID: map[string]*form.Form{}}
	if r == nil {
		return s, nil
	}

	var doc struct {
		Forms []formEntry `yaml:"forms"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode forms file: %w", err)
	}
	for _, e := range doc.Forms {
		f := &form.Form{ID: e.ID, UUID: e.UUID, Name: e.Name, EncounterTypeID: e.EncounterTypeID}
		s.byID[f.ID] = f
		if f.UUID != "" {
			s.byUUID[f.UUID] = f
		}
	}
	return s, nil
}

func (s *staticForms) GetFormByUUID(_ context.Context, uuid string) (*form.Form, error) {
	if f, ok := s.byUUID[uuid]; ok {
		return f, nil
	}
	return nil, form.ErrFormNotFound
}

func (s *staticForms) GetFormByID(_ context.Context, id int) (*form.Form, error) {
	if f, ok := s.byID[id]; ok {
		return f, nil
	}
	return nil, form.ErrFormNotFound
}

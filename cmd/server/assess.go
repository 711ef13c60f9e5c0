package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"botanica/internal/conservation"
	"botanica/internal/conservation/models"
)

func assessCmd(opts *options) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "assess NAME [NAME...]",
		Short: "Fetch and classify conservation status for scientific names",
		Example: `  botanica assess "Welwitschia mirabilis"
  botanica assess --source fake "Cannabis sativa" "Welwitschia mirabilis"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if source != "" {
				cfg.Conservation.Enabled = true
				cfg.Conservation.Source = source
			}
			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.close()

			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, strings.TrimSpace(arg))
			}
			found, err := a.conservation.FetchMany(cmd.Context(), names)
			if err != nil {
				return err
			}

			out := make([]models.Classification, 0, len(names))
			for _, name := range names {
				out = append(out, conservation.Classify(name, found[name]))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", `Override the conservation source ("iucn" or "fake")`)
	return cmd
}

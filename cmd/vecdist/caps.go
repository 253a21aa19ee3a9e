package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/vecdist"
	"github.com/hupe1980/vecdist/distance"
)

type capsReport struct {
	Vendor     string            `json:"vendor" yaml:"vendor"`
	Brand      string            `json:"brand" yaml:"brand"`
	Level      string            `json:"level" yaml:"level"`
	Overridden bool              `json:"overridden" yaml:"overridden"`
	Features   featureReport     `json:"features" yaml:"features"`
	Tiers      map[string]string `json:"tiers" yaml:"tiers"`
}

type featureReport struct {
	SSE    bool `json:"sse" yaml:"sse"`
	SSE2   bool `json:"sse2" yaml:"sse2"`
	AVX    bool `json:"avx" yaml:"avx"`
	AVX2   bool `json:"avx2" yaml:"avx2"`
	AVX512 bool `json:"avx512" yaml:"avx512"`
}

func newReport(table *vecdist.KernelTable) capsReport {
	c := table.Capabilities()
	r := capsReport{
		Vendor:     c.Vendor,
		Brand:      c.Brand,
		Level:      c.Level.String(),
		Overridden: c.Overridden,
		Features: featureReport{
			SSE:    c.SSE,
			SSE2:   c.SSE2,
			AVX:    c.AVX,
			AVX2:   c.AVX2,
			AVX512: c.AVX512,
		},
		Tiers: make(map[string]string, len(distance.ElementTypes)),
	}
	for _, et := range distance.ElementTypes {
		tier, _ := table.Tier(et)
		r.Tiers[et.String()] = tier.String()
	}
	return r
}

func newCapsCmd() *cobra.Command {
	var (
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Show detected CPU features and the kernel tier per element type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []vecdist.Option{}
			if verbose {
				logger := vecdist.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
				opts = append(opts, vecdist.WithLogger(logger))
			}
			return writeReport(cmd.OutOrStdout(), newReport(vecdist.NewKernelTable(opts...)), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log table construction to stderr")

	return cmd
}

func newTiersCmd() *cobra.Command {
	var (
		level  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the kernel tier each element type gets at a capability level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := distance.ParseLevel(level)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), newReport(vecdist.NewKernelTable(vecdist.WithLevel(l))), output)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "avx512", "Capability level: scalar, sse, sse2, avx, avx2 or avx512")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

func writeReport(w io.Writer, r capsReport, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "text":
		fmt.Fprintf(w, "Vendor:     %s\n", r.Vendor)
		fmt.Fprintf(w, "Brand:      %s\n", r.Brand)
		fmt.Fprintf(w, "Level:      %s\n", r.Level)
		fmt.Fprintf(w, "Overridden: %v\n", r.Overridden)
		fmt.Fprintf(w, "SSE: %v SSE2: %v AVX: %v AVX2: %v AVX512: %v\n",
			r.Features.SSE, r.Features.SSE2, r.Features.AVX, r.Features.AVX2, r.Features.AVX512)
		for _, et := range distance.ElementTypes {
			fmt.Fprintf(w, "%-6s -> %s\n", et, r.Tiers[et.String()])
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

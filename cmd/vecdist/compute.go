package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecdist"
	"github.com/hupe1980/vecdist/distance"
)

func newComputeCmd() *cobra.Command {
	var (
		elementType string
		metric      string
		level       string
	)

	cmd := &cobra.Command{
		Use:   "compute <a> <b>",
		Short: "Compute the distance between two comma-separated vectors",
		Example: `  vecdist compute --type int8 --metric l2 1,2,3,4 4,3,2,1
  vecdist compute --type float --metric cosine --level sse 1,0 0,1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, err := distance.ParseElementType(elementType)
			if err != nil {
				return err
			}
			m, err := distance.ParseMetric(metric)
			if err != nil {
				return err
			}

			opts := []vecdist.Option{}
			if level != "" {
				l, err := distance.ParseLevel(level)
				if err != nil {
					return err
				}
				opts = append(opts, vecdist.WithLevel(l))
			}
			table := vecdist.NewKernelTable(opts...)

			a, dimA, err := parseVector(args[0], et)
			if err != nil {
				return fmt.Errorf("vector a: %w", err)
			}
			b, dimB, err := parseVector(args[1], et)
			if err != nil {
				return fmt.Errorf("vector b: %w", err)
			}
			if dimA != dimB {
				return fmt.Errorf("dimension mismatch: %d vs %d", dimA, dimB)
			}
			if err := table.Validate(a, b, dimA, et); err != nil {
				return err
			}

			k, err := table.Distance(et, m)
			if err != nil {
				return err
			}
			tier, _ := table.Tier(et)

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", k(a, b, dimA))
			fmt.Fprintf(cmd.ErrOrStderr(), "type=%s metric=%s tier=%s dim=%d\n", et, m, tier, dimA)
			return nil
		},
	}

	cmd.Flags().StringVarP(&elementType, "type", "t", "float", "Element type: int8, uint8, int16 or float")
	cmd.Flags().StringVarP(&metric, "metric", "m", "l2", "Metric: l2, cosine or innerproduct")
	cmd.Flags().StringVarP(&level, "level", "l", "", "Pin a capability level instead of the detected one")

	return cmd
}

// parseVector parses a comma-separated list into the raw buffer of et and
// returns it with its element count.
func parseVector(s string, et distance.ElementType) ([]byte, int, error) {
	parts := strings.Split(s, ",")
	switch et {
	case distance.Int8:
		v, err := parseInts[int8](parts, 8)
		return vecdist.Bytes(v), len(v), err
	case distance.UInt8:
		v := make([]uint8, len(parts))
		for i, p := range parts {
			x, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return nil, 0, fmt.Errorf("invalid element %q: %w", p, err)
			}
			v[i] = uint8(x)
		}
		return vecdist.Bytes(v), len(v), nil
	case distance.Int16:
		v, err := parseInts[int16](parts, 16)
		return vecdist.Bytes(v), len(v), err
	case distance.Float32:
		v := make([]float32, len(parts))
		for i, p := range parts {
			x, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
			if err != nil {
				return nil, 0, fmt.Errorf("invalid element %q: %w", p, err)
			}
			v[i] = float32(x)
		}
		return vecdist.Bytes(v), len(v), nil
	default:
		return nil, 0, fmt.Errorf("%w: %v", distance.ErrUnsupportedElementType, et)
	}
}

func parseInts[T int8 | int16](parts []string, bitSize int) ([]T, error) {
	v := make([]T, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseInt(strings.TrimSpace(p), 10, bitSize)
		if err != nil {
			return nil, fmt.Errorf("invalid element %q: %w", p, err)
		}
		v[i] = T(x)
	}
	return v, nil
}

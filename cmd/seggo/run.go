package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/seggo"
	"github.com/hupe1980/seggo/frame"
)

func init() {
	runCmd.Flags().StringP("input", "i", "", "input CSV file (plain or .gz)")
	runCmd.Flags().StringP("schema", "s", "", "YAML dataset schema")
	runCmd.Flags().Int("k", 0, "number of clusters (overrides schema)")
	runCmd.Flags().Int64("seed", 0, "clustering seed (overrides schema)")
	runCmd.Flags().Int("max-iter", 100, "maximum Lloyd's iterations")
	runCmd.Flags().Int("parallelism", 1, "assignment worker count")
	runCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
	runCmd.Flags().Bool("allow-empty-cohorts", false, "leave rows of all-missing cohorts missing instead of failing")

	_ = runCmd.MarkFlagRequired("input")
	_ = runCmd.MarkFlagRequired("schema")

	_ = viper.BindPFlag("k", runCmd.Flags().Lookup("k"))
	_ = viper.BindPFlag("seed", runCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("log_level", runCmd.Flags().Lookup("log-level"))

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean, impute, and cluster a survey CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		schemaPath, _ := cmd.Flags().GetString("schema")
		maxIter, _ := cmd.Flags().GetInt("max-iter")
		parallelism, _ := cmd.Flags().GetInt("parallelism")
		allowEmpty, _ := cmd.Flags().GetBool("allow-empty-cohorts")

		schema, err := LoadSchema(schemaPath)
		if err != nil {
			return err
		}

		k := schema.K
		if v := viper.GetInt("k"); v > 0 {
			k = v
		}
		seed := schema.Seed
		if v := viper.GetInt64("seed"); v != 0 {
			seed = v
		}

		level, err := parseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}

		f, err := frame.OpenCSV(input, frame.CSVOptions{
			Numeric:       schema.NumericColumns(),
			MissingTokens: schema.MissingTokens,
		})
		if err != nil {
			return err
		}

		b := seggo.New().
			Features(schema.Features...).
			K(k).
			Seed(seed)
		if schema.Age.Column != "" {
			b = b.Age(schema.Age.Column, schema.Age.Min, schema.Age.Max)
		}
		if schema.Gender.Column != "" {
			b = b.Gender(schema.Gender.Column, schema.Gender.Target)
		}
		if schema.Cohort != "" {
			b = b.Cohort(schema.Cohort)
		}
		if schema.Friends != "" {
			b = b.FriendCount(schema.Friends)
		}
		if len(schema.Aux) > 0 {
			b = b.Aux(schema.Aux...)
		}
		if allowEmpty {
			b = b.AllowEmptyCohorts()
		}

		p, err := b.Build(
			seggo.WithLogLevel(level),
			seggo.WithMaxIterations(maxIter),
			seggo.WithParallelism(parallelism),
		)
		if err != nil {
			return err
		}

		res, err := p.Run(cmd.Context(), f)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), res.RenderText())
		return nil
	},
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "seggo",
	Short: "seggo: segment survey profile data with k-means",
	Long:  `seggo cleans and imputes a survey-style CSV dataset, clusters the selected feature columns with k-means, and prints per-cluster summary tables.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix("SEGGO")
	viper.AutomaticEnv()
}

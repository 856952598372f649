// cmd/root.go
package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	policyPath string
	outputPath string
	logLevel   string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "cdnsim",
	Short: "Discrete-event simulator for CDN request routing and caching",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one CDN simulation from a request file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		req, err := LoadRunRequest(configPath)
		if err != nil {
			logrus.Fatalf("loading request: %v", err)
		}
		if err := req.Validate(); err != nil {
			logrus.Fatalf("invalid request: %v", err)
		}

		bundle := defaultPolicyBundle()
		if policyPath != "" {
			bundle, err = LoadPolicyBundle(policyPath)
			if err != nil {
				logrus.Fatalf("loading policy bundle: %v", err)
			}
		}

		logrus.Infof("starting run %s: %d nodes, %d users, cachePolicy=%v, cacheSize=%d",
			req.RunID, len(req.NodeCoordinates), len(req.UserCoordinates), req.CachePolicy, req.CacheSize)

		s, err := BuildSimulator(req, bundle, seed)
		if err != nil {
			logrus.Fatalf("building simulator: %v", err)
		}

		s.InitialSchedule()
		s.Run()
		summary := s.Summarize()
		out := BuildOutput(req, summary)

		logrus.Infof("run %s complete: %d requests, %.2f%% cache hit, %d ms elapsed",
			out.RunID, out.TotalRequests, out.CacheHitPercentage, out.TotalTimeElapsed)

		if err := writeOutput(outputPath, out); err != nil {
			logrus.Fatalf("writing output: %v", err)
		}
	},
}

func writeOutput(path string, out Output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "path to the JSON run request (required)")
	runCmd.Flags().StringVar(&policyPath, "policy", "", "path to an optional YAML policy bundle")
	runCmd.Flags().StringVar(&outputPath, "out", "", "path to write the JSON result (stdout if empty)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "workload generator seed")
	_ = runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(runCmd)
}

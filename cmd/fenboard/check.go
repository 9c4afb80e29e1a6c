package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fenboard/internal/checker"
)

var checkWorkers int

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a file of FEN strings, one position per line",
	Long: `Reads the named file and parses every line as FEN. Blank lines and lines
starting with "#" are skipped. Exits non-zero if any position is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkWorkers, "workers", runtime.NumCPU(), "number of parse workers")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var report, err = checker.CheckFile(cmd.Context(), args[0], checkWorkers)
	if err != nil {
		return err
	}

	for _, lineErr := range report.Errors {
		logger.Warn("invalid position",
			zap.Int("line", lineErr.Line),
			zap.String("fen", lineErr.FEN),
			zap.Error(lineErr.Err))
	}
	logger.Info("check finished",
		zap.String("file", args[0]),
		zap.Int("total", report.Total),
		zap.Int("bad", report.Bad))

	if !report.OK() {
		return fmt.Errorf("%d of %d positions invalid", report.Bad, report.Total)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d positions OK\n", report.Total)
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fenboard/pkg/fen"
)

var viewCmd = &cobra.Command{
	Use:   "view <fen>",
	Short: "Render a single FEN string",
	Long: `Parses the FEN argument and prints the board and a position summary.
Pass "-" to read the FEN from standard input instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	var input = args[0]
	if input == "-" {
		var scanner = bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return errors.New("no input on stdin")
		}
		input = scanner.Text()
	}

	var rec, err = fen.Parse(input)
	if err != nil {
		return err
	}
	logger.Debug("parsed position",
		zap.String("fen", rec.String()),
		zap.String("toMove", rec.ActiveColor.String()))

	var renderer = newRenderer()
	fmt.Fprint(cmd.OutOrStdout(), renderer.Board(rec))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Summary(rec))
	return nil
}

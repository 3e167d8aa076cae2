package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/lemonade/internal/lemonade"
	"github.com/fakeyudi/lemonade/internal/log"
	"github.com/fakeyudi/lemonade/internal/tui"
)

var plainOutput bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the lemonade tutorial",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, plainOutput)
	},
}

// runPlay starts a session and hands it to the TUI, or to the line-driven
// loop when plain is set or stdin is not a terminal.
func runPlay(cmd *cobra.Command, plain bool) error {
	s := lemonade.NewSession(nil)
	logger := log.WithComponent("play")
	logger.Info().Str("session", s.ID).Int("required_taps", s.RequiredTaps).Msg("session started")

	if plain || !term.IsTerminal(os.Stdin.Fd()) {
		return playPlain(cmd.InOrStdin(), cmd.OutOrStdout(), s)
	}
	return tui.Run(cmd.Context(), s, GetConfig())
}

// playPlain treats every input line as a tap and prints the screen after
// each one. It stops at EOF or on a line reading "q".
func playPlain(in io.Reader, out io.Writer, s *lemonade.Session) error {
	logger := log.WithComponent("play").With().Str("session", s.ID).Logger()

	printScreen(out, s)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "q" {
			break
		}
		from := s.State
		s.Advance()
		logger.Debug().Stringer("from", from).Stringer("to", s.State).Msg("advance")
		printScreen(out, s)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading taps: %w", err)
	}
	return nil
}

// printScreen writes the plain-text rendering of the current state.
func printScreen(w io.Writer, s *lemonade.Session) {
	a := s.Asset()
	line := fmt.Sprintf("[%s] %s", a.Image, a.Caption)
	if s.State == lemonade.Squeezing {
		line += fmt.Sprintf(" (%d/%d)", s.CurrentTaps, s.RequiredTaps)
	}
	fmt.Fprintln(w, line)
}

func init() {
	playCmd.Flags().BoolVar(&plainOutput, "plain", false, "line-based output instead of the interactive screen")
	rootCmd.AddCommand(playCmd)
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	abcnote "github.com/cbegin/abcnote-go"
)

var rootCmd = &cobra.Command{
	Use:           "notes",
	Short:         "parse ABC pitch and length tokens and print them as Unicode glyphs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var pitchCmd = &cobra.Command{
	Use:   "pitch [token]",
	Short: "parse a pitch token like ^^B or =b,,'',",
	Args:  cobra.ExactArgs(1),
	RunE:  runPitch,
}

var lengthCmd = &cobra.Command{
	Use:   "length [token]",
	Short: "parse a length token like 7/16, /2 or //",
	Args:  cobra.ExactArgs(1),
	RunE:  runLength,
}

var noteCmd = &cobra.Command{
	Use:   "note [token]",
	Short: "parse a pitch with an optional trailing length, like ^^B7/16",
	Args:  cobra.ExactArgs(1),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(pitchCmd, lengthCmd, noteCmd)
}

func runPitch(cmd *cobra.Command, args []string) error {
	n, rest, err := abcnote.ParsePitch(args[0])
	if err != nil {
		return errors.Wrapf(err, "parsing pitch %q", args[0])
	}
	warnRest(rest)
	fmt.Println(n)
	return nil
}

func runLength(cmd *cobra.Command, args []string) error {
	l, rest, err := abcnote.ParseLength(args[0])
	if err != nil {
		return errors.Wrapf(err, "parsing length %q", args[0])
	}
	warnRest(rest)
	fmt.Println(l)
	return nil
}

func runNote(cmd *cobra.Command, args []string) error {
	n, rest, err := abcnote.ParseNote(args[0])
	if err != nil {
		return errors.Wrapf(err, "parsing note %q", args[0])
	}
	warnRest(rest)
	fmt.Println(n)
	return nil
}

func warnRest(rest string) {
	if rest != "" {
		fmt.Fprintf(os.Stderr, "ignoring trailing input %q\n", rest)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

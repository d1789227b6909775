package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buttsbot/buttsbot/buttify"
)

var (
	buttifyWord      bool
	buttifySyllables bool
)

var buttifyCmd = &cobra.Command{
	Use:   "buttify [text...]",
	Short: "Buttify text without connecting to Discord",
	Long: `Buttify the given text the same way the bot does and print the result.

Examples:
  buttsbot buttify banana for scale
  buttsbot buttify --word banana
  buttsbot buttify --syllables computer`,
	Args: cobra.MinimumNArgs(1),
	RunE: runButtify,
}

func init() {
	rootCmd.AddCommand(buttifyCmd)
	buttifyCmd.Flags().BoolVarP(&buttifyWord, "word", "w", false, "treat each argument as a single word")
	buttifyCmd.Flags().BoolVarP(&buttifySyllables, "syllables", "s", false, "print the syllables of each argument instead")
}

func runButtify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case buttifySyllables:
		for _, word := range args {
			fmt.Fprintln(out, strings.Join(buttify.Syllables(word), "-"))
		}

	case buttifyWord:
		for _, word := range args {
			buttified, ok := buttify.Word(word)
			if !ok {
				return fmt.Errorf("could not buttify %q", word)
			}
			fmt.Fprintln(out, buttified)
		}

	default:
		sentence := strings.Join(args, " ")
		buttified, ok := buttify.Sentence(sentence)
		if !ok {
			return fmt.Errorf("could not buttify %q", sentence)
		}
		fmt.Fprintln(out, buttified)
	}

	return nil
}

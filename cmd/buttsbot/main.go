// Command buttsbot runs the buttsbot Discord bot, or tries its buttification offline.
//
// Usage:
//
//	export BUTTSBOT_TOKEN="your-bot-token"
//	buttsbot run
//
// Then, in a Discord server where the bot is present, type:
//
//	b!butt Hello, World!
//	b!prefix !!
//	b!shut
//
// Without a Discord connection:
//
//	buttsbot buttify banana for scale
//	buttsbot buttify --syllables computer
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "buttsbot",
	Short: "Discord bot that replaces a random syllable with butt",
	Long: `buttsbot watches Discord messages and now and then replies with one of their
syllables replaced by "butt". Explicit commands start with the server's prefix (b! by default).

Configuration is read from an optional YAML file, a .env file in the working directory,
and BUTTSBOT_* environment variables, in that order of increasing precedence.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (optional)")
}

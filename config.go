package buttsbot

import (
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "BUTTSBOT_"

// Config contains configuration variables for buttsbot.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string `json:"token" yaml:"token" env:"TOKEN"`

	// Prefix is the command prefix used in guilds that have not set their own, and in direct messages.
	Prefix string `json:"prefix" yaml:"prefix" env:"PREFIX"`

	// HelpCommand is the command string that triggers go-sarah's help.
	// When a user sends this exact string, the input is converted to sarah.HelpInput.
	// Empty disables the conversion.
	// The converted input never reaches the bot's own commands, so setting this to e.g. "b!help" shadows that command.
	HelpCommand string `json:"help_command" yaml:"help_command" env:"HELP_COMMAND"`

	// AbortCommand is the command string that triggers context cancellation.
	// When a user sends this exact string, the input is converted to sarah.AbortInput.
	// Empty disables the conversion.
	// The converted input never reaches the bot's own commands, so setting this to e.g. "b!help" shadows that command.
	AbortCommand string `json:"abort_command" yaml:"abort_command" env:"ABORT_COMMAND"`

	// Intents declares the Gateway Intents the bot requires.
	Intents discordgo.Intent `json:"intents" yaml:"intents" env:"INTENTS"`

	// Chance tunes how often the bot replies to messages nobody asked it to.
	Chance *ChanceConfig `json:"chance" yaml:"chance" envPrefix:"CHANCE_"`

	// Reactions lists the authors whose messages always get an emoji reaction.
	Reactions []*ReactionRule `json:"reactions" yaml:"reactions"`
}

// ChanceConfig describes the probability of an unprompted buttification in a guild.
//
// A guild that was never buttified gets Base.
// Otherwise the chance grows with the cube of the seconds elapsed since the last buttification,
// Coefficient * s^3, and is capped at Max.
type ChanceConfig struct {
	Base        float64 `json:"base" yaml:"base" env:"BASE"`
	Max         float64 `json:"max" yaml:"max" env:"MAX"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient" env:"COEFFICIENT"`
}

// ReactionRule matches a message author and names the emoji to react with.
// An author matches when UserID equals the author's ID,
// or when NameContains is a substring of the author's username or guild nickname.
type ReactionRule struct {
	UserID       string `json:"user_id" yaml:"user_id"`
	NameContains string `json:"name_contains" yaml:"name_contains"`

	// Emoji is either a unicode emoji or "name:id" for a custom guild emoji.
	Emoji string `json:"emoji" yaml:"emoji"`
}

// NewConfig creates and returns a new Config instance with default settings.
// Token is empty and must be set before use.
func NewConfig() *Config {
	return &Config{
		Token:        "",
		Prefix:       "b!",
		HelpCommand:  "",
		AbortCommand: "",
		Intents:      discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent,
		Chance: &ChanceConfig{
			Base:        0.04,
			Max:         0.1,
			Coefficient: 1.0717e-11,
		},
		Reactions: []*ReactionRule{},
	}
}

// LoadConfig builds a Config from defaults, the YAML file at path, and then environment variables prefixed with EnvPrefix.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = yaml.Unmarshal(buf, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	err := env.Parse(config, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would otherwise make the bot misbehave silently.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return ErrEmptyPrefix
	}

	if c.Chance == nil {
		return fmt.Errorf("chance must be set")
	}

	if c.Chance.Base < 0 || c.Chance.Base > 1 {
		return fmt.Errorf("chance base must be within [0, 1]: %v", c.Chance.Base)
	}

	if c.Chance.Max < 0 || c.Chance.Max > 1 {
		return fmt.Errorf("chance max must be within [0, 1]: %v", c.Chance.Max)
	}

	if c.Chance.Coefficient < 0 {
		return fmt.Errorf("chance coefficient must not be negative: %v", c.Chance.Coefficient)
	}

	for i, rule := range c.Reactions {
		if rule == nil {
			return fmt.Errorf("reaction rule %d is empty", i)
		}
		if rule.Emoji == "" {
			return fmt.Errorf("reaction rule %d has no emoji", i)
		}
		if rule.UserID == "" && rule.NameContains == "" {
			return fmt.Errorf("reaction rule %d matches nobody", i)
		}
	}

	return nil
}

// Package buttsbot provides a Discord bot that replaces a random syllable of a chat message with "butt".
//
// The bot runs on go-sarah with a sarah.Adapter implementation backed by discordgo.
// Adapter converts Discord message events into sarah.Input and dispatches sarah.Output as Discord messages,
// while Handler supplies the commands that decide when to call the buttify package:
// explicit commands behind a per-guild prefix, and unprompted replies throttled by a cooldown curve.
//
// The text transformation itself lives in the buttify package and has no Discord dependency.
package buttsbot

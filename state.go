package buttsbot

import (
	"math"
	"sync"
	"time"
)

// At returns the chance of an unprompted buttification when elapsed has passed since the last one.
func (c *ChanceConfig) At(elapsed time.Duration) float64 {
	s := elapsed.Seconds()
	if s < 0 {
		s = 0
	}
	return math.Min(c.Coefficient*s*s*s, c.Max)
}

// GuildState holds the per-guild command prefixes and buttification cooldowns.
// It is safe for concurrent use.
type GuildState struct {
	defaultPrefix string
	chance        ChanceConfig

	mu        sync.Mutex
	prefixes  map[string]string
	cooldowns map[string]time.Time
}

// NewGuildState creates an empty GuildState with the prefix and chance settings of the given Config.
func NewGuildState(config *Config) *GuildState {
	return &GuildState{
		defaultPrefix: config.Prefix,
		chance:        *config.Chance,
		prefixes:      map[string]string{},
		cooldowns:     map[string]time.Time{},
	}
}

// Prefix returns the command prefix of the given guild.
// Guilds without their own prefix, and direct messages with an empty guildID, get the default prefix.
func (s *GuildState) Prefix(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefix, ok := s.prefixes[guildID]; ok {
		return prefix
	}
	return s.defaultPrefix
}

// SetPrefix changes the command prefix of the given guild.
func (s *GuildState) SetPrefix(guildID string, prefix string) error {
	if guildID == "" {
		return ErrNotGuild
	}
	if prefix == "" {
		return ErrEmptyPrefix
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefixes[guildID] = prefix

	return nil
}

// MarkButtified records at as the time of the guild's latest buttification, which restarts its cooldown.
func (s *GuildState) MarkButtified(guildID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooldowns[guildID] = at
}

// Chance returns the probability of an unprompted buttification in the given guild at now.
func (s *GuildState) Chance(guildID string, now time.Time) float64 {
	s.mu.Lock()
	last, ok := s.cooldowns[guildID]
	s.mu.Unlock()

	if !ok {
		return s.chance.Base
	}
	return s.chance.At(now.Sub(last))
}

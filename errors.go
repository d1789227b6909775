package buttsbot

import "errors"

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrNoAuthor indicates that the given message has no author.
var ErrNoAuthor = errors.New("message has no author")

// ErrEmptyPrefix indicates that an empty command prefix was given.
var ErrEmptyPrefix = errors.New("prefix must not be empty")

// ErrNotGuild indicates that a guild-only operation was requested outside of a guild.
var ErrNotGuild = errors.New("operation is only available in a guild")

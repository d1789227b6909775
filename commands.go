package buttsbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"

	"github.com/buttsbot/buttsbot/buttify"
)

const (
	shutCommand   = "shut"
	helpCommand   = "help"
	buttCommand   = "butt"
	prefixCommand = "prefix"
)

var knownCommands = map[string]struct{}{
	shutCommand:   {},
	helpCommand:   {},
	buttCommand:   {},
	prefixCommand: {},
}

// HandlerOption defines a function signature for Handler's functional options.
type HandlerOption func(*Handler)

// WithButtifier sets the Buttifier that transforms messages.
func WithButtifier(buttifier *buttify.Buttifier) HandlerOption {
	return func(h *Handler) {
		h.buttifier = buttifier
	}
}

// WithRand sets the source used to decide whether an unprompted message is buttified.
func WithRand(r buttify.Rand) HandlerOption {
	return func(h *Handler) {
		h.rand = r
	}
}

// Handler provides the bot's commands.
// Explicit commands start with the guild's prefix; any other guild message may be buttified unprompted.
type Handler struct {
	state     *GuildState
	buttifier *buttify.Buttifier
	rand      buttify.Rand
	now       func() time.Time
}

// NewHandler creates a new Handler that keeps its guild settings in the given GuildState.
func NewHandler(state *GuildState, options ...HandlerOption) *Handler {
	h := &Handler{
		state:     state,
		buttifier: buttify.New(),
		rand:      buttify.DefaultRand(),
		now:       time.Now,
	}

	for _, opt := range options {
		opt(h)
	}

	return h
}

// route binds a matcher to the function that serves the matched input.
type route struct {
	identifier  string
	instruction string
	match       func(sarah.Input) bool
	fnc         sarah.ContextualFunc
}

// routes returns the routes of the Handler.
// Their matchers are mutually exclusive, so the order does not matter.
func (h *Handler) routes() []*route {
	prefix := h.state.Prefix("")
	return []*route{
		{
			identifier:  shutCommand,
			instruction: fmt.Sprintf("Input %sshut to make the bot keep quiet for a while.", prefix),
			match:       h.matchCommand(shutCommand),
			fnc:         h.shut,
		},
		{
			identifier:  helpCommand,
			instruction: fmt.Sprintf("Input %shelp to ask for help.", prefix),
			match:       h.matchCommand(helpCommand),
			fnc:         h.help,
		},
		{
			identifier:  buttCommand,
			instruction: fmt.Sprintf("Input %sbutt <message> to buttify the message.", prefix),
			match:       h.matchCommand(buttCommand),
			fnc:         h.butt,
		},
		{
			identifier:  prefixCommand,
			instruction: fmt.Sprintf("Input %sprefix <prefix> to change the command prefix of this server.", prefix),
			match:       h.matchCommand(prefixCommand),
			fnc:         h.prefix,
		},
		{
			identifier:  "unknown",
			instruction: "Anything else after the prefix is met with suspicion.",
			match:       h.matchUnknown,
			fnc:         h.unknown,
		},
		{
			identifier:  "buttify",
			instruction: "Just talk. Sometimes the bot buttifies what you said.",
			match:       h.matchUnprompted,
			fnc:         h.unprompted,
		},
	}
}

// CommandProps returns the props of every command the Handler serves.
func (h *Handler) CommandProps() []*sarah.CommandProps {
	routes := h.routes()
	props := make([]*sarah.CommandProps, 0, len(routes))
	for _, r := range routes {
		props = append(props, sarah.NewCommandPropsBuilder().
			BotType(DISCORD).
			Identifier(r.identifier).
			MatchFunc(r.match).
			Func(r.fnc).
			Instruction(r.instruction).
			MustBuild())
	}
	return props
}

func (h *Handler) matchCommand(name string) func(sarah.Input) bool {
	return func(input sarah.Input) bool {
		got, _, ok := h.parse(input)
		return ok && got == name
	}
}

func (h *Handler) matchUnknown(input sarah.Input) bool {
	name, _, ok := h.parse(input)
	if !ok {
		return false
	}
	_, known := knownCommands[name]
	return !known
}

// matchUnprompted matches every guild message that is not a command.
func (h *Handler) matchUnprompted(input sarah.Input) bool {
	if guildOf(input) == "" {
		return false
	}
	_, _, isCommand := h.parse(input)
	return !isCommand
}

// parse splits a prefixed message into the command name and the rest of the message.
// The third return value is false when the message does not start with the prefix,
// or when input is not a received Discord message, such as go-sarah's help or abort wrappers.
func (h *Handler) parse(input sarah.Input) (string, string, bool) {
	if _, ok := input.(*Input); !ok {
		return "", "", false
	}

	prefix := h.prefixOf(input)
	message := input.Message()
	if !strings.HasPrefix(message, prefix) {
		return "", "", false
	}

	name, args, _ := strings.Cut(message[len(prefix):], " ")
	return name, args, true
}

func (h *Handler) prefixOf(input sarah.Input) string {
	return h.state.Prefix(guildOf(input))
}

func guildOf(input sarah.Input) string {
	if i, ok := input.(*Input); ok {
		return i.GuildID()
	}
	return ""
}

func (h *Handler) shut(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	if guildID := guildOf(input); guildID != "" {
		h.state.MarkButtified(guildID, h.now())
	}
	return NewReply(input, "no you")
}

func (h *Handler) help(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	return NewReply(input, "there is no help for you now.")
}

func (h *Handler) butt(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	_, args, _ := h.parse(input)

	buttified, ok := h.buttifier.Sentence(args)
	if !ok || buttify.IsDegenerate(buttified) {
		return nil, nil
	}

	logger.Debugf("Butted %q to %q", input.Message(), buttified)
	return NewResponse(input, buttified)
}

func (h *Handler) prefix(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	guildID := guildOf(input)
	if guildID == "" {
		return NewReply(input, "prefixes only exist in servers.")
	}

	_, args, _ := h.parse(input)
	prefix := strings.TrimSpace(args)
	if prefix == "" {
		return NewReply(input, "prefix to what?", RespWithNext(h.setPrefix(guildID)))
	}

	return h.applyPrefix(input, guildID, prefix)
}

// setPrefix returns a function that takes the user's next message as the new prefix.
func (h *Handler) setPrefix(guildID string) sarah.ContextualFunc {
	return func(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
		prefix := strings.TrimSpace(input.Message())
		if prefix == "" {
			return NewReply(input, "fine, keep it then.")
		}
		return h.applyPrefix(input, guildID, prefix)
	}
}

func (h *Handler) applyPrefix(input sarah.Input, guildID string, prefix string) (*sarah.CommandResponse, error) {
	if strings.ContainsAny(prefix, " \t\r\n") {
		return NewReply(input, "no spaces in the prefix.")
	}

	err := h.state.SetPrefix(guildID, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to set prefix of guild %s: %w", guildID, err)
	}

	logger.Infof("Prefix of guild %s is now %q", guildID, prefix)
	return NewReply(input, fmt.Sprintf("prefix is now %q", prefix))
}

func (h *Handler) unknown(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	name, _, _ := h.parse(input)
	return NewReply(input, fmt.Sprintf("tf are you on about? \"%s\" looking head-ass", name))
}

// unprompted buttifies a guild message when a roll beats the guild's current chance.
func (h *Handler) unprompted(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	guildID := guildOf(input)
	now := h.now()

	chance := h.state.Chance(guildID, now)
	logger.Debugf("Butt chance of message in guild %s: %.2f", guildID, chance)
	if h.rand.Float64() >= chance {
		return nil, nil
	}

	buttified, ok := h.buttifier.Sentence(input.Message())
	if !ok || buttify.IsDegenerate(buttified) {
		return nil, nil
	}

	logger.Debugf("Butted %q to %q", input.Message(), buttified)
	h.state.MarkButtified(guildID, now)
	return NewReply(input, buttified)
}

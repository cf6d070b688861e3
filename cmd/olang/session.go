package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Helset123/olang/internal/config"
	"github.com/Helset123/olang/internal/core"
	"github.com/Helset123/olang/internal/highlight"
	"github.com/Helset123/olang/internal/prettyprint"
	"github.com/Helset123/olang/internal/utils"
	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_FLAG = "log-level"
	COLOR_FLAG     = "color"

	PRETTY_PRINT_MAX_DEPTH = 10
)

// commonFlags are the flags accepted by the subcommands that evaluate code.
type commonFlags struct {
	logLevel string
	color    string
}

func (f *commonFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&f.logLevel, LOG_LEVEL_FLAG, "", "log level (debug, info, warn, error), overrides the user configuration")
	flags.StringVar(&f.color, COLOR_FLAG, "", "color mode (auto, always, never), overrides the user configuration")
}

// A session holds the configuration resolved from the user configuration file and the flags.
type session struct {
	userConfig config.UserConfig
	colorize   bool
	logger     zerolog.Logger

	prettyPrintConfig *prettyprint.PrettyPrintConfig

	inR  io.Reader
	outW io.Writer
	errW io.Writer
}

func newSession(flags commonFlags, inR io.Reader, outW, errW io.Writer) (*session, error) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		userConfig.LogLevel = flags.logLevel
	}
	if flags.color != "" {
		userConfig.Color = config.ColorMode(flags.color)
	}

	if err := userConfig.Validate(); err != nil {
		return nil, err
	}

	level, err := userConfig.ZerologLevel()
	if err != nil {
		return nil, err
	}

	colorize := userConfig.ShouldColorize()

	var logger zerolog.Logger
	if colorize {
		logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = errW
			w.TimeFormat = time.TimeOnly
		}))
	} else {
		logger = zerolog.New(errW)
	}
	logger = logger.Level(level).With().Timestamp().Logger()

	return &session{
		userConfig: userConfig,
		colorize:   colorize,
		logger:     logger,
		prettyPrintConfig: &prettyprint.PrettyPrintConfig{
			MaxDepth: PRETTY_PRINT_MAX_DEPTH,
			Colorize: colorize,
			Colors:   prettyprint.DefaultColors(config.DARK_BACKGROUND),
			Compact:  false,
			Indent:   []byte{' ', ' '},
		},
		inR:  inR,
		outW: outW,
		errW: errW,
	}, nil
}

func (s *session) newInterpreter() *core.Interpreter {
	return core.NewInterpreter(core.NewContext(core.ContextConfig{
		Out:    s.outW,
		In:     s.inR,
		Logger: &s.logger,
	}))
}

// evalSource evaluates source with a new interpreter and prints a diagnostic on error.
func (s *session) evalSource(source string, printResult bool) int {
	interp := s.newInterpreter()

	value, err := interp.Eval(source)
	if err != nil {
		s.printError(err, source, interp.Environment())
		return ERROR_STATUS_CODE
	}

	if printResult {
		fmt.Fprintln(s.outW, core.Display(value))
	}
	return 0
}

func (s *session) printValue(value core.Value) {
	utils.PanicIfErr(prettyprint.PrettyPrint(s.outW, value, s.prettyPrintConfig))
	fmt.Fprintln(s.outW)
}

// printError prints a diagnostic for err, env is used to suggest a name when a variable is not declared.
func (s *session) printError(err error, source string, env *core.Environment) {
	diagnosticConfig := prettyprint.DiagnosticConfig{
		PrettyPrintConfig: *s.prettyPrintConfig,
		Hint:              suggestionFor(err, env),
	}
	if s.colorize {
		diagnosticConfig.HighlightStyle = highlight.StyleName(config.DARK_BACKGROUND)
	}

	if printErr := prettyprint.PrintDiagnostic(s.errW, err, source, diagnosticConfig); printErr != nil {
		s.logger.Error().Err(printErr).Msg("failed to print diagnostic")
		fmt.Fprintln(s.errW, err)
	}
}

func suggestionFor(err error, env *core.Environment) string {
	var exception *core.Exception
	if env == nil || !errors.As(err, &exception) || exception.Kind != core.UndeclaredIdentifier || exception.Identifier == "" {
		return ""
	}

	closest, _, ok := utils.FindClosestString(env.Names(), exception.Identifier, MAX_SUGGESTION_DISTANCE)
	if !ok {
		return ""
	}
	return fmt.Sprintf("did you mean `%s` ?", closest)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/Helset123/olang/internal/cache"
	"github.com/Helset123/olang/internal/config"
	"github.com/Helset123/olang/internal/core"
	"github.com/Helset123/olang/internal/parse"
	"github.com/maruel/natural"
	"github.com/peterh/liner"
	"golang.org/x/exp/maps"
)

const (
	REPL_BANNER = "olang REPL, type :help to list the commands, exit with :quit or Ctrl-D."

	QUIT_REPL_CMD  = ":quit"
	ENV_REPL_CMD   = ":env"
	RESET_REPL_CMD = ":reset"
	HELP_REPL_CMD  = ":help"

	REPL_HELP = ":quit  - exit the REPL\n" +
		":env   - list the visible variables\n" +
		":reset - forget all the declared variables\n" +
		":help  - show this message\n" +
		"An input that is not complete (e.g. an unclosed block) continues on the next line.\n"

	//status code when the REPL is interrupted by a signal.
	INTERRUPTED_STATUS_CODE = 130

	MAX_CACHED_REPL_PROGRAMS = 100
)

func StartREPL(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var common commonFlags
	common.register(flags)

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		return ERROR_STATUS_CODE
	}

	//liner reads from the standard input.
	s, err := newSession(common, os.Stdin, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	r := newREPL(s)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(r.complete)

	historyPath, err := s.userConfig.HistoryFilePath()
	if err != nil {
		s.logger.Warn().Err(err).Msg("history is disabled")
		historyPath = ""
	}

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				s.logger.Warn().Err(err).Msg("failed to save the history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(INTERRUPTED_STATUS_CODE)
	}()

	prompt := s.userConfig.Prompt
	if prompt == "" {
		prompt = config.DEFAULT_PROMPT
	}

	fmt.Fprintln(outW, REPL_BANNER)

	for {
		input, ok := readCompleteInput(ln, prompt, config.DEFAULT_CONTINUATION_PROMPT, r.needsMoreInput)
		if !ok {
			fmt.Fprintln(outW)
			return 0
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if quit := r.handleInput(input); quit {
			return 0
		}
	}
}

// readCompleteInput reads lines until they form an input that does not need more input, ok is false at
// the end of the input.
func readCompleteInput(ln *liner.State, prompt, continuationPrompt string, needsMoreInput func(string) bool) (input string, ok bool) {
	var b strings.Builder

	for {
		currentPrompt := prompt
		if b.Len() > 0 {
			currentPrompt = continuationPrompt
		}

		line, err := ln.Prompt(currentPrompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !needsMoreInput(src) {
			return src, true
		}
	}
}

// A repl evaluates the inputs of the user against a persistent interpreter.
type repl struct {
	session *session
	interp  *core.Interpreter

	//programs parsed while checking whether the inputs were complete
	programs *cache.ParseCache[parse.Program]
}

func newREPL(s *session) *repl {
	return &repl{
		session:  s,
		interp:   s.newInterpreter(),
		programs: cache.NewParseCache[parse.Program](MAX_CACHED_REPL_PROGRAMS),
	}
}

// reset replaces the interpreter with a fresh one, cached programs are dropped because they may
// reference functions of the previous interpreter.
func (r *repl) reset() {
	r.interp = r.session.newInterpreter()
	r.programs.InvalidateAllEntries()
}

// needsMoreInput reports whether src is incomplete, the program is cached if src is valid.
func (r *repl) needsMoreInput(src string) bool {
	program, err := parse.ParseSource(src)
	if err != nil {
		return parse.IsIncomplete(err)
	}
	r.programs.Put(src, program)
	return false
}

// handleInput evaluates input or executes a REPL command, errors are printed and do not stop the REPL.
func (r *repl) handleInput(input string) (quit bool) {
	trimmed := strings.TrimSpace(input)
	outW := r.session.outW

	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case QUIT_REPL_CMD:
			return true
		case ENV_REPL_CMD:
			names := r.interp.Environment().Names()
			slices.SortFunc(names, compareNatural)

			for _, name := range names {
				value, _ := r.interp.Environment().Get(name)
				fmt.Fprintf(outW, "%s = %s\n", name, value.String())
			}
		case RESET_REPL_CMD:
			r.reset()
			fmt.Fprintln(outW, "environment reset")
		case HELP_REPL_CMD:
			fmt.Fprint(outW, REPL_HELP)
		default:
			fmt.Fprintf(outW, "unknown command, type %s to list the commands.\n", HELP_REPL_CMD)
		}
		return false
	}

	var value core.Value
	var err error

	if program, ok := r.programs.Get(input); ok {
		value, err = r.interp.EvalProgram(program)
	} else {
		value, err = r.interp.Eval(input)
	}

	if err != nil {
		r.session.printError(err, input, r.interp.Environment())
		return false
	}

	if _, isNull := value.(core.Null); !isNull {
		r.session.printValue(value)
	}
	return false
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

// complete returns the completions of the last word of line: keywords and visible variables.
func (r *repl) complete(line string) (completions []string) {
	start := 0
	if i := strings.LastIndexFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		start = i + size
	}

	prefix := line[start:]
	if prefix == "" {
		return nil
	}

	candidates := append(maps.Keys(parse.KEYWORDS), r.interp.Environment().Names()...)
	slices.Sort(candidates)

	for _, candidate := range slices.Compact(candidates) {
		if strings.HasPrefix(candidate, prefix) && candidate != prefix {
			completions = append(completions, line[:start]+candidate)
		}
	}
	return
}

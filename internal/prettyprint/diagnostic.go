package prettyprint

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/Helset123/olang/internal/highlight"
	"github.com/Helset123/olang/internal/sourcecode"
	"github.com/Helset123/olang/internal/utils"
)

const (
	DIAGNOSTIC_ERROR_PREFIX = "error: "
	DIAGNOSTIC_HINT_PREFIX  = "hint: "
	DIAGNOSTIC_GUTTER       = " | "
	DIAGNOSTIC_CARET        = '^'
)

type DiagnosticConfig struct {
	PrettyPrintConfig

	//name of the chroma style used to highlight the source line, no highlighting if empty.
	HighlightStyle string

	//optional line printed after the source excerpt.
	Hint string
}

// PrintDiagnostic writes err to w. If err is a located error whose region is inside source
// the offending line is printed with a caret under the region:
//
//	error: 1:9: Unhandled exception: UndeclaredIdentifier: b is not declared
//	1 | var a = b
//	  |         ^
func PrintDiagnostic(w io.Writer, err error, source string, config DiagnosticConfig) (finalErr error) {
	colors := config.Colors
	if colors == nil {
		colors = &DEFAULT_DARKMODE_PRINT_COLORS
	}

	writer := NewWriter(bufio.NewWriter(w), &config.PrettyPrintConfig)

	defer func() {
		if e := recover(); e != nil {
			finalErr = utils.ConvertPanicValueToError(e)
		}
	}()

	writer.WriteColored(colors.ErrorColor, DIAGNOSTIC_ERROR_PREFIX)
	writer.WriteString(err.Error())
	writer.WriteSingleByte('\n')

	var located sourcecode.LocatedError
	if errors.As(err, &located) {
		region := located.LocationRegion()
		runes := []rune(source)

		if region.Start.Line > 0 && int(region.Start.Offset) <= len(runes) {
			printExcerpt(writer, runes, region, config, colors)
		}
	}

	if config.Hint != "" {
		writer.WriteColored(colors.DiscreteColor, DIAGNOSTIC_HINT_PREFIX)
		writer.WriteString(config.Hint)
		writer.WriteSingleByte('\n')
	}

	return writer.Flush()
}

func printExcerpt(w PrettyPrintWriter, runes []rune, region sourcecode.Region, config DiagnosticConfig, colors *PrettyPrintColors) {
	line, indexInLine := sourcecode.GetLine(runes, region.Start.Offset)
	lineNumber := strconv.Itoa(int(region.Start.Line))
	padding := strings.Repeat(" ", len(lineNumber))

	w.WriteColored(colors.DiscreteColor, lineNumber+DIAGNOSTIC_GUTTER)
	if config.Colorize && config.HighlightStyle != "" {
		w.WriteString(highlight.String(line, config.HighlightStyle))
	} else {
		w.WriteString(line)
	}
	w.WriteSingleByte('\n')

	//the caret is limited to the part of the region on the first line.
	caretCount := int(region.Len())
	lineRest := len([]rune(line)) - int(indexInLine)
	if caretCount > lineRest {
		caretCount = lineRest
	}
	if caretCount < 1 {
		caretCount = 1
	}

	w.WriteColored(colors.DiscreteColor, padding+DIAGNOSTIC_GUTTER)
	w.WriteString(strings.Repeat(" ", int(indexInLine)))
	w.WriteColored(colors.ErrorColor, strings.Repeat(string(DIAGNOSTIC_CARET), caretCount))
	w.WriteSingleByte('\n')
}

package prettyprint

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Helset123/olang/internal/core"
	"github.com/Helset123/olang/internal/utils"
)

// PrettyPrint writes a representation of v to w, strings are quoted unless they are at the top level
// and config.PrintDecodedTopLevelStrings is set.
func PrettyPrint(w io.Writer, v core.Value, config *PrettyPrintConfig) (finalErr error) {
	buffered := bufio.NewWriter(w)
	writer := NewWriter(buffered, config)

	defer func() {
		if e := recover(); e != nil {
			finalErr = utils.ConvertPanicValueToError(e)
		}
	}()

	if s, ok := v.(core.String); ok && config.PrintDecodedTopLevelStrings {
		writer.WriteString(string(s))
	} else {
		prettyPrintValue(writer, v)
	}

	return writer.Flush()
}

// Sprint is like PrettyPrint but returns a string.
func Sprint(v core.Value, config *PrettyPrintConfig) string {
	buf := &strings.Builder{}
	utils.PanicIfErr(PrettyPrint(buf, v, config))
	return buf.String()
}

func prettyPrintValue(w PrettyPrintWriter, v core.Value) {
	colors := w.config.Colors
	if colors == nil {
		colors = &DEFAULT_DARKMODE_PRINT_COLORS
	}

	switch val := v.(type) {
	case core.Int:
		w.WriteColored(colors.NumberLiteral, val.String())
	case core.String:
		w.WriteColored(colors.StringLiteral, strconv.Quote(string(val)))
	case core.Bool, core.Null:
		w.WriteColored(colors.Constant, val.String())
	case core.List:
		prettyPrintList(w, val)
	case *core.DefinedFunction, *core.BuiltinFunction:
		w.WriteColored(colors.Function, val.String())
	default:
		w.WriteColored(colors.DiscreteColor, val.String())
	}
}

func prettyPrintList(w PrettyPrintWriter, list core.List) {
	if len(list) == 0 {
		w.WriteString("[]")
		return
	}

	if w.config.MaxDepth > 0 && w.Depth >= w.config.MaxDepth {
		w.WriteSingleByte('[')
		w.WriteBytes(THREE_DOTS)
		w.WriteSingleByte(']')
		return
	}

	multiline := !w.config.Compact && containsList(list)
	inner := w.IncrDepth()

	w.WriteSingleByte('[')
	for i, elem := range list {
		if multiline {
			inner.WriteLineAndIndent()
		} else if i > 0 {
			w.WriteSingleByte(' ')
		}
		prettyPrintValue(inner, elem)
	}
	if multiline {
		w.WriteLineAndIndent()
	}
	w.WriteSingleByte(']')
}

func containsList(list core.List) bool {
	for _, elem := range list {
		if _, ok := elem.(core.List); ok {
			return true
		}
	}
	return false
}

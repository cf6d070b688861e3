package prettyprint

import (
	"bufio"
	"fmt"

	"github.com/Helset123/olang/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	THREE_DOTS = []byte{'.', '.', '.'}
)

// A PrettyPrintWriter panics on write errors, the panics are recovered by the exported
// printing functions.
type PrettyPrintWriter struct {
	writer *bufio.Writer
	config *PrettyPrintConfig

	Depth int
}

func NewWriter(writer *bufio.Writer, config *PrettyPrintConfig) PrettyPrintWriter {
	return PrettyPrintWriter{
		writer: writer,
		config: config,
	}
}

func (w PrettyPrintWriter) WriteString(str string) {
	utils.Must(w.writer.WriteString(str))
}

func (w PrettyPrintWriter) WriteStringF(fmtStr string, args ...any) {
	utils.Must(fmt.Fprintf(w.writer, fmtStr, args...))
}

func (w PrettyPrintWriter) WriteBytes(b []byte) {
	utils.Must(w.writer.Write(b))
}

func (w PrettyPrintWriter) WriteSingleByte(b byte) {
	utils.PanicIfErr(w.writer.WriteByte(b))
}

func (w PrettyPrintWriter) WriteAnsiReset() {
	utils.Must(w.writer.Write(ANSI_RESET_SEQUENCE))
}

// WriteColored writes str in color if colorization is enabled and color is not empty.
func (w PrettyPrintWriter) WriteColored(color []byte, str string) {
	if !w.config.Colorize || len(color) == 0 {
		w.WriteString(str)
		return
	}
	w.WriteBytes(color)
	w.WriteString(str)
	w.WriteAnsiReset()
}

func (w PrettyPrintWriter) WriteLineAndIndent() {
	w.WriteSingleByte('\n')
	for i := 0; i < w.Depth; i++ {
		w.WriteBytes(w.config.Indent)
	}
}

func (w PrettyPrintWriter) IncrDepth() PrettyPrintWriter {
	w.Depth++
	return w
}

func (w PrettyPrintWriter) Flush() error {
	return w.writer.Flush()
}

package core

import (
	"bufio"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// A Context holds the I/O streams and the logger used during evaluation,
// builtin functions receive it as their first argument.
type Context struct {
	Out    io.Writer
	In     *bufio.Reader
	Logger zerolog.Logger
}

type ContextConfig struct {
	Out    io.Writer //defaults to os.Stdout
	In     io.Reader //defaults to os.Stdin
	Logger *zerolog.Logger
}

func NewContext(config ContextConfig) *Context {
	ctx := &Context{
		Out:    config.Out,
		Logger: zerolog.Nop(),
	}

	if ctx.Out == nil {
		ctx.Out = os.Stdout
	}

	in := config.In
	if in == nil {
		in = os.Stdin
	}

	if reader, ok := in.(*bufio.Reader); ok {
		ctx.In = reader
	} else {
		ctx.In = bufio.NewReader(in)
	}

	if config.Logger != nil {
		ctx.Logger = *config.Logger
	}

	return ctx
}

// Command protocbor converts inspector-protocol messages between their
// JSON text and binary wire forms, and can trace the event stream a
// parse produces for debugging malformed input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	cbor "github.com/ovidlabs/protocbor/runtime"
)

// CLI defines the protocbor command-line interface.
type CLI struct {
	Encode EncodeCmd `cmd:"" help:"Convert JSON text on stdin (or a file) to a binary message on stdout."`
	Decode DecodeCmd `cmd:"" help:"Convert a binary message on stdin (or a file) to JSON text on stdout."`
	Diag   DiagCmd   `cmd:"" help:"Trace the event stream a parse produces, one event per line."`
}

type EncodeCmd struct {
	Input string `arg:"" optional:"" help:"Input JSON file (defaults to stdin)."`
}

func (c *EncodeCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	out, status := cbor.ConvertJSONToBinary(data)
	if !status.IsOK() {
		return fmt.Errorf("encode: %s", status.Error())
	}
	_, err = os.Stdout.Write(out)
	return err
}

type DecodeCmd struct {
	Input string `arg:"" optional:"" help:"Input binary file (defaults to stdin)."`
}

func (c *DecodeCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	out, status := cbor.ConvertBinaryToJSON(data)
	if !status.IsOK() {
		return fmt.Errorf("decode: %s", status.Error())
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	_, err = os.Stdout.Write([]byte("\n"))
	return err
}

type DiagCmd struct {
	Input string `arg:"" optional:"" help:"Input file (defaults to stdin)."`
	JSON  bool   `help:"Treat input as JSON text instead of a binary message."`
}

func (c *DiagCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	t := cbor.NewTraceHandler(bb)
	if c.JSON {
		cbor.ParseJSON(data, t)
	} else {
		cbor.ParseBinary(data, t)
	}
	_, err = os.Stdout.Write(bb.Bytes())
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("protocbor"),
		kong.Description("Convert inspector-protocol messages between JSON and a compact binary form."),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

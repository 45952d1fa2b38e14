/*
Command namudump parses namumark documents and prints the result.

	namudump [-trace level] [-format tree|pp|markup|text] [-nfc] [file …]
	namudump -i

Without file arguments the document is read from stdin. With -i, namudump
starts an interactive session which parses every input line as a document.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/k0kubun/pp"
	"github.com/npillmayer/namumark"
	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/format"
	"github.com/npillmayer/namumark/markup/text"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'namumark'
func tracer() tracing.Trace {
	return tracing.Select("namumark")
}

// Output formats
const (
	formatTree   = "tree"
	formatPP     = "pp"
	formatMarkup = "markup"
	formatText   = "text"
)

func main() {
	initDisplay()

	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	outfmt := flag.String("format", formatTree, "Output format [tree|pp|markup|text]")
	nfc := flag.Bool("nfc", false, "Normalize input to NFC")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.namumark":       *tlevel,
		"trace.namumark.block": *tlevel,
		"trace.namumark.span":  *tlevel,
		"trace.namumark.scan":  *tlevel,
		"trace.namumark.value": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	if !isFormat(*outfmt) {
		pterm.Error.Printf("unknown output format %q\n", *outfmt)
		os.Exit(core.EINVALID)
	}
	var opts []namumark.Option
	if *nfc {
		opts = append(opts, namumark.WithNormalization(norm.NFC))
	}
	d := &dumper{parser: namumark.New(opts...), format: *outfmt, out: os.Stdout}

	if *interactive {
		if err := d.REPL(); err != nil {
			core.UserError(err)
			os.Exit(core.Code(err))
		}
		return
	}
	if flag.NArg() == 0 {
		if err := d.dump(os.Stdin, "stdin"); err != nil {
			core.UserError(err)
			os.Exit(core.Code(err))
		}
		return
	}
	for _, name := range flag.Args() {
		if err := d.dumpFile(name); err != nil {
			core.UserError(err)
			os.Exit(core.Code(err))
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func isFormat(f string) bool {
	switch f {
	case formatTree, formatPP, formatMarkup, formatText:
		return true
	}
	return false
}

type dumper struct {
	parser *namumark.Parser
	format string
	out    io.Writer
}

func (d *dumper) dumpFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open document %s", name)
	}
	defer f.Close()
	return d.dump(f, name)
}

func (d *dumper) dump(r io.Reader, name string) error {
	blocks, err := d.parser.ParseReader(r)
	if err != nil {
		return err
	}
	tracer().Debugf("%s: %d blocks", name, len(blocks))
	return d.print(blocks)
}

func (d *dumper) print(blocks []ast.Block) error {
	var err error
	switch d.format {
	case formatTree:
		err = ast.Dump(d.out, blocks)
	case formatPP:
		_, err = pp.Fprintln(d.out, blocks)
	case formatMarkup:
		_, err = fmt.Fprintln(d.out, format.Markup(blocks))
	case formatText:
		_, err = fmt.Fprintln(d.out, text.PlainText(blocks).String())
	}
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot print document")
	}
	return nil
}

// REPL starts interactive mode. Each line is parsed as a document; `\n`
// may be used to enter line breaks.
func (d *dumper) REPL() error {
	repl, err := readline.New("namu > ")
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot start interactive mode")
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.ReplaceAll(line, `\n`, "\n")
		if err := d.print(d.parser.Parse(line)); err != nil {
			tracer().Errorf(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

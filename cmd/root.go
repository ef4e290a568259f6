/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/rstms/hexdump/dump"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "hexdump FILE",
	Short:   "display file contents in hexadecimal",
	Long: `
Display the contents of FILE as an offset column, sixteen hexadecimal octets
and a printable ASCII panel per line.  Runs of identical lines are replaced
by a single '*' line.  The final line holds the total byte count.

Use '-' as FILE to read standard input.  A file named like a subcommand
must be given with a directory, as in './config'.

With --braille each octet is shown as a Braille pattern; on a terminal the
patterns are drawn in alternating colors.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return HexDump(cmd.OutOrStdout(), args[0])
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")

	OptionSwitch(rootCmd, "braille", "b", "display octets as Braille patterns")
	OptionSwitch(rootCmd, "no-elide", "E", "display every line, including repeats")
	OptionString(rootCmd, "color", "", "auto", "Braille coloring: auto, always or never")
}

func openInput(filename string) (io.ReadCloser, error) {
	if filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func HexDump(w io.Writer, filename string) error {
	colorMode, err := dump.ParseColorMode(ViperGetString("color"))
	if err != nil {
		return err
	}
	input, err := openInput(filename)
	if err != nil {
		return err
	}
	defer input.Close()

	sink := dump.NewTerminalSink(w, colorMode)
	options := dump.Options{
		Mode:  dump.ModeHex,
		Elide: !ViperGetBool("no_elide"),
		Color: sink.ColorEnabled(),
	}
	if ViperGetBool("braille") {
		options.Mode = dump.ModeBraille
	}
	if ViperGetBool("debug") {
		log.Printf("HexDump(%s) options=%+v color=%s\n", filename, options, colorMode)
	}

	summary, err := dump.Dump(input, sink, options)
	flushErr := sink.Flush()
	if err == nil {
		err = flushErr
	}
	if dump.IsBrokenPipe(err) {
		if ViperGetBool("verbose") {
			log.Printf("%s: output closed after %d bytes\n", filename, summary.Bytes)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if ViperGetBool("verbose") {
		log.Printf("%s: %d bytes, %d lines, %d elided\n", filename, summary.Bytes, summary.Lines, summary.Elided)
	}
	return nil
}

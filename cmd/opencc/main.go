// Command opencc converts Chinese text between scripts on the command
// line, reading a file or stdin and writing a file or stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	opencc "github.com/laisuk/opencc-fmmseg"
)

func main() {
	var (
		configName string
		inPath     string
		outPath    string
		punct      bool
		noParallel bool
		dictPath   string
		dictDir    string
	)

	root := &cobra.Command{
		Use:   "opencc",
		Short: "Convert between Simplified, Traditional and Shinjitai Chinese",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := opencc.ParseConfig(configName); !ok {
				return fmt.Errorf("invalid config %q", configName)
			}

			var cc *opencc.OpenCC
			var err error
			switch {
			case dictPath != "":
				cc, err = opencc.NewFromCompressed(dictPath)
			case dictDir != "":
				cc, err = opencc.NewFromDir(dictDir)
			default:
				return fmt.Errorf("no lexicon source: pass --dict or --dict-dir")
			}
			if err != nil {
				return err
			}
			cc.SetParallel(!noParallel)

			input, err := readInput(inPath)
			if err != nil {
				return err
			}
			if !utf8.ValidString(input) {
				return opencc.ErrInvalidUTF8
			}

			output := cc.Convert(input, configName, punct)
			if msg := cc.LastError(); msg != "No error" {
				return fmt.Errorf("%s", msg)
			}
			return writeOutput(outPath, output)
		},
	}

	root.Flags().StringVarP(&configName, "config", "c", "s2t", "conversion config (s2t, t2s, s2twp, ...)")
	root.Flags().StringVarP(&inPath, "input", "i", "", "input file (default stdin)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	root.Flags().BoolVarP(&punct, "punct", "p", false, "convert punctuation as well")
	root.Flags().BoolVar(&noParallel, "no-parallel", false, "disable parallel segment conversion")
	root.Flags().StringVar(&dictPath, "dict", "", "compressed lexicon blob")
	root.Flags().StringVar(&dictDir, "dict-dir", "", "directory of OpenCC .txt lexicons")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "opencc:", err)
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

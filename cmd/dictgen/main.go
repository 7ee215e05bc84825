// Command dictgen compiles OpenCC .txt lexicons into the compressed blob
// the converter loads at startup, and exports a compiled blob to JSON or
// back to .txt lexicons.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	opencc "github.com/laisuk/opencc-fmmseg"
	"github.com/laisuk/opencc-fmmseg/dict"
)

func main() {
	root := &cobra.Command{
		Use:   "dictgen",
		Short: "Compile and inspect OpenCC lexicon bundles",
	}
	root.AddCommand(generateCmd(), exportCmd(), statsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dictgen:", err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var dictDir, outPath string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile a dicts directory into a Zstd-compressed CBOR blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := dict.FromDir(dictDir)
			if err != nil {
				return err
			}
			return bundle.SaveCompressed(outPath)
		},
	}
	cmd.Flags().StringVarP(&dictDir, "dicts", "d", "dicts", "directory of OpenCC .txt lexicons")
	cmd.Flags().StringVarP(&outPath, "output", "o", "dictionary_maxlength.zst", "output blob")
	return cmd
}

func exportCmd() *cobra.Command {
	var blobPath, jsonPath, textDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a compiled blob to JSON and/or .txt lexicons",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := dict.LoadCompressed(blobPath)
			if err != nil {
				return err
			}
			if jsonPath != "" {
				if err := bundle.SaveJSON(jsonPath); err != nil {
					return err
				}
			}
			if textDir != "" {
				if err := bundle.SaveToDir(textDir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&blobPath, "blob", "b", "dictionary_maxlength.zst", "compiled blob")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write a JSON export here")
	cmd.Flags().StringVar(&textDir, "text", "", "write .txt lexicons into this directory")
	return cmd
}

func statsCmd() *cobra.Command {
	var blobPath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-table entry counts and length bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := dict.LoadCompressed(blobPath)
			if err != nil {
				return err
			}
			total := 0
			for _, name := range dict.TableNames() {
				d := bundle.Table(name)
				total += d.Len()
				fmt.Printf("%-24s %10s entries  len %d..%d\n",
					name, opencc.FormatThousand(d.Len()), d.MinLen, d.MaxLen)
			}
			fmt.Printf("%-24s %10s entries\n", "total", opencc.FormatThousand(total))
			return nil
		},
	}
	cmd.Flags().StringVarP(&blobPath, "blob", "b", "dictionary_maxlength.zst", "compiled blob")
	return cmd
}

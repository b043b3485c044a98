// cfbpack packs a directory tree into a compound file (CFBF/OLE2)
// container: subdirectories become storages, files become streams.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-cfb"
)

var (
	output    string
	rootName  string
	rootCLSID string
	compress  string
)

func main() {
	cmd := &cobra.Command{
		Use:   "cfbpack <dir>",
		Short: "Pack a directory tree into a compound file container",
		Long: `cfbpack encodes a directory tree into a single compound file
(CFBF/OLE2) container. Subdirectories become storages and regular
files become streams; file contents are read lazily while the
container is serialized.

The finished image can optionally be compressed as a whole for
transport (the container format itself is never compressed).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0])
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.cfb", "output file")
	cmd.Flags().StringVar(&rootName, "root-name", "Root Entry", "name of the root storage")
	cmd.Flags().StringVar(&rootCLSID, "root-clsid", "", "root CLSID as 32 hex digits")
	cmd.Flags().StringVar(&compress, "compress", compNone, "compress the output file: none, zstd, lz4 or br")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPack(dir string) error {
	b := cfb.NewBuilder(rootName)
	if err := addDir(b, b.Root(), dir); err != nil {
		return err
	}

	var opts []cfb.WriteOption
	if rootCLSID != "" {
		id, err := parseCLSID(rootCLSID)
		if err != nil {
			return err
		}
		opts = append(opts, cfb.WithRootCLSID(id))
	}
	raw, err := cfb.EncodeBytes(b.Entries(), opts...)
	if err != nil {
		return err
	}

	out, err := compressOutput(compress, raw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d container bytes, %d on disk)\n", output, len(raw), len(out))
	return nil
}

func parseCLSID(s string) ([16]byte, error) {
	var id [16]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(id) {
		return id, fmt.Errorf("root CLSID must be 32 hex digits")
	}
	copy(id[:], b)
	return id, nil
}

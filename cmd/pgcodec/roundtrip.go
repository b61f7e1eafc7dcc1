package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errRoundTripMismatch = errors.New("re-encoded value differs from input")

func newRoundTripCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <type> <hex>",
		Short: "Decode a value, encode it again, and compare the bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, src, err := parseTypeAndValue(opts.typeMap, args[0], args[1])
			if err != nil {
				return err
			}

			v, err := opts.typeMap.DecodeName(t.Name, src)
			if err != nil {
				return fmt.Errorf("decode %s: %w", t.Name, err)
			}

			buf, err := opts.typeMap.EncodeName(t.Name, v)
			if err != nil {
				return fmt.Errorf("encode %s: %w", t.Name, err)
			}

			if !bytes.Equal(src, buf) {
				fmt.Fprintf(cmd.OutOrStdout(), "input:  %s\noutput: %s\n", hex.EncodeToString(src), hex.EncodeToString(buf))
				return errRoundTripMismatch
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

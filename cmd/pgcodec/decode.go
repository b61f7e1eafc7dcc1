package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgcodec"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <type> <hex>",
		Short: "Decode a value and print it",
		Long: `Decode a binary value and print it.

The type is a type name or OID. The value is hex, optionally with a leading \x
as printed by psql for bytea.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, src, err := parseTypeAndValue(opts.typeMap, args[0], args[1])
			if err != nil {
				return err
			}

			v, err := opts.typeMap.DecodeName(t.Name, src)
			if err != nil {
				return fmt.Errorf("decode %s: %w", t.Name, err)
			}

			if asJSON {
				b, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded value as JSON")

	return cmd
}

// parseTypeAndValue looks up typeArg by name or OID and decodes hexArg.
func parseTypeAndValue(m *pgcodec.Map, typeArg, hexArg string) (*pgcodec.Type, []byte, error) {
	t, ok := m.TypeForName(typeArg)
	if !ok {
		if oid, err := strconv.ParseUint(typeArg, 10, 32); err == nil {
			t, ok = m.TypeForOID(uint32(oid))
		}
	}
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", pgcodec.ErrUnknownType, typeArg)
	}

	hexArg = strings.TrimPrefix(hexArg, `\x`)
	hexArg = strings.Join(strings.Fields(hexArg), "")
	src, err := hex.DecodeString(hexArg)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid hex value: %w", err)
	}

	return t, src, nil
}

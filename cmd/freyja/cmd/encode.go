/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var encodeType, encodeDir, encodeValue string

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode one typed scalar into its order-preserving hex bytes",
	Long: `Encode one typed scalar into its order-preserving hex bytes.

Example:
  freyja encode --type int --dir asc --value 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseType(encodeType)
		if err != nil {
			return err
		}
		dir := parseDirection(encodeDir)

		v, err := parseScalarValue(encodeValue, t)
		if err != nil {
			return fmt.Errorf("invalid --value: %w", err)
		}
		if v.Null {
			return fmt.Errorf("cannot encode a NULL scalar outside a record; see the record-oriented put/scan commands")
		}

		dst, err := encodeScalar(t, dir, v)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(dst))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVar(&encodeType, "type", "", "Scalar type: int|long|double|string|bool|date|timestamp|binary|object")
	encodeCmd.Flags().StringVar(&encodeDir, "dir", "asc", "Sort direction: asc|desc")
	encodeCmd.Flags().StringVar(&encodeValue, "value", "", "Value literal (hex for binary/object)")
}

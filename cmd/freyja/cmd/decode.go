/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var decodeType, decodeDir, decodeHex string

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode order-preserving hex bytes back into a typed scalar",
	Long: `Decode order-preserving hex bytes back into a typed scalar.

Example:
  freyja decode --type int --dir asc --hex 8000001e`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseType(decodeType)
		if err != nil {
			return err
		}
		dir := parseDirection(decodeDir)

		src, err := hex.DecodeString(decodeHex)
		if err != nil {
			return fmt.Errorf("invalid --hex: %w", err)
		}

		v, err := decodeScalar(t, dir, src)
		if err != nil {
			return err
		}
		fmt.Println(formatValue(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVar(&decodeType, "type", "", "Scalar type: int|long|double|string|bool|date|timestamp|binary|object")
	decodeCmd.Flags().StringVar(&decodeDir, "dir", "asc", "Sort direction: asc|desc")
	decodeCmd.Flags().StringVar(&decodeHex, "hex", "", "Encoded bytes, hex")
}

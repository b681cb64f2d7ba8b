/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/freyja-ope/pkg/store"
)

var scanSchema, scanLow, scanHigh string

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Range-scan a table between two (possibly partial) tuples",
	Long: `Range-scan a table between two tuples, each a possibly-partial
prefix of --schema's columns; an omitted bound leaves that side open.

Example:
  freyja scan --table people --schema "age:int:asc,name:string:asc" \
    --low 25 --high 40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetString("table")
		if table == "" {
			return fmt.Errorf("--table is required")
		}

		schema, err := parseSchema(scanSchema)
		if err != nil {
			return fmt.Errorf("invalid --schema: %w", err)
		}
		low, err := parseValues(scanLow, schema)
		if err != nil {
			return fmt.Errorf("invalid --low: %w", err)
		}
		high, err := parseValues(scanHigh, schema)
		if err != nil {
			return fmt.Errorf("invalid --high: %w", err)
		}

		engine, err := engineFromContext(cmd)
		if err != nil {
			return err
		}

		ts := store.NewTupleStore(engine, table, schema)
		rows, err := ts.Scan(low, high)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		for _, row := range rows {
			cols := make([]string, len(row.Key))
			for i, v := range row.Key {
				cols[i] = formatValue(v)
			}
			fmt.Printf("%s\t%s\n", strings.Join(cols, ","), hex.EncodeToString(row.Payload))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().String("table", "", "Table name")
	scanCmd.Flags().StringVar(&scanSchema, "schema", "", "Column list: name:type[:dir],...")
	scanCmd.Flags().StringVar(&scanLow, "low", "", "Low bound tuple, comma-separated, may be a partial prefix")
	scanCmd.Flags().StringVar(&scanHigh, "high", "", "High bound tuple, comma-separated, may be a partial prefix")
}

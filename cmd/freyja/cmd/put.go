/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/freyja-ope/pkg/store"
)

var putSchema, putValues, putPayload string

// putCmd represents the put command.
var putCmd = &cobra.Command{
	Use:   "put",
	Short: "Insert a typed tuple row",
	Long: `Insert a row into a table, encoding its composite key with the
order-preserving codec.

Example:
  freyja put --table people --schema "age:int:asc,name:string:asc" \
    --values "30,alice" --payload 68656c6c6f`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetString("table")
		if table == "" {
			return fmt.Errorf("--table is required")
		}

		schema, err := parseSchema(putSchema)
		if err != nil {
			return fmt.Errorf("invalid --schema: %w", err)
		}
		values, err := parseValues(putValues, schema)
		if err != nil {
			return fmt.Errorf("invalid --values: %w", err)
		}
		if len(values) != len(schema) {
			return fmt.Errorf("--values supplied %d values, schema has %d columns", len(values), len(schema))
		}
		payload, err := hex.DecodeString(putPayload)
		if err != nil {
			return fmt.Errorf("invalid --payload hex: %w", err)
		}

		engine, err := engineFromContext(cmd)
		if err != nil {
			return err
		}

		ts := store.NewTupleStore(engine, table, schema)
		if err := ts.Put(values, payload); err != nil {
			return fmt.Errorf("put failed: %w", err)
		}

		fmt.Printf("put row into %q\n", table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().String("table", "", "Table name")
	putCmd.Flags().StringVar(&putSchema, "schema", "", "Column list: name:type[:dir],...")
	putCmd.Flags().StringVar(&putValues, "values", "", "Comma-separated values matching --schema")
	putCmd.Flags().StringVar(&putPayload, "payload", "", "Row payload, hex-encoded")
}

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

var getSchema, getValues string

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a row's payload by its exact composite key",
	Long: `Fetch a row's payload by its exact composite key.

Example:
  freyja get --table people --schema "age:int:asc,name:string:asc" --values "30,alice"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetString("table")
		if table == "" {
			return fmt.Errorf("--table is required")
		}

		schema, err := parseSchema(getSchema)
		if err != nil {
			return fmt.Errorf("invalid --schema: %w", err)
		}
		values, err := parseValues(getValues, schema)
		if err != nil {
			return fmt.Errorf("invalid --values: %w", err)
		}
		if len(values) != len(schema) {
			return fmt.Errorf("--values supplied %d values, schema has %d columns", len(values), len(schema))
		}

		engine, err := engineFromContext(cmd)
		if err != nil {
			return err
		}

		ts := store.NewTupleStore(engine, table, schema)
		payload, err := ts.Get(values)
		if err != nil {
			return fmt.Errorf("get failed: %w", err)
		}

		fmt.Println(hex.EncodeToString(payload))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().String("table", "", "Table name")
	getCmd.Flags().StringVar(&getSchema, "schema", "", "Column list: name:type[:dir],...")
	getCmd.Flags().StringVar(&getValues, "values", "", "Comma-separated values matching --schema")
}

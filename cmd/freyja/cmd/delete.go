/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/freyja-ope/pkg/store"
)

var deleteSchema, deleteValues string

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a row by its exact composite key",
	Long: `Delete a row by its exact composite key.

Example:
  freyja delete --table people --schema "age:int:asc,name:string:asc" --values "30,alice"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetString("table")
		if table == "" {
			return fmt.Errorf("--table is required")
		}

		schema, err := parseSchema(deleteSchema)
		if err != nil {
			return fmt.Errorf("invalid --schema: %w", err)
		}
		values, err := parseValues(deleteValues, schema)
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
		if err := ts.Delete(values); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}

		fmt.Printf("deleted row from %q\n", table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().String("table", "", "Table name")
	deleteCmd.Flags().StringVar(&deleteSchema, "schema", "", "Column list: name:type[:dir],...")
	deleteCmd.Flags().StringVar(&deleteValues, "values", "", "Comma-separated values matching --schema")
}

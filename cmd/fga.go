/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/JohnPitter/church-management-sub005/internal/auth"
	"github.com/spf13/cobra"
)

// fgaModelCmd represents the fga-model command
var fgaModelCmd = &cobra.Command{
	Use:   "fga-model",
	Short: "Print the OpenFGA authorization model",
	Long: `Print the OpenFGA authorization model in DSL format.
Pipe the output to the OpenFGA CLI to initialize or update
the store used by this service:

  church-management fga-model | fga model write --store-id <store> --file /dev/stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(auth.GetPermissionModel())
	},
}

func init() {
	rootCmd.AddCommand(fgaModelCmd)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/container"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import legacy data from a JSON export file",
	Long: `Import data exported from the legacy system.
The file is a JSON document with top-level collections
(membros, assistidos, eventos, transacoes). Records are
deduplicated by CPF, so re-importing the same file does not
create duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. 读取导入文件
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		// 3. 初始化容器
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 4. 执行导入
		log.Printf("Importing legacy data from %s", args[0])
		summary, err := ctr.ImportService().Import(context.Background(), data)
		if err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		log.Printf("membros: %d created, %d updated, %d skipped",
			summary.Members.Created, summary.Members.Updated, summary.Members.Skipped)
		log.Printf("assistidos: %d created, %d updated, %d skipped",
			summary.Assisted.Created, summary.Assisted.Updated, summary.Assisted.Skipped)
		log.Printf("eventos: %d created, %d updated, %d skipped",
			summary.Events.Created, summary.Events.Updated, summary.Events.Skipped)
		log.Printf("transacoes: %d created, %d updated, %d skipped",
			summary.Transactions.Created, summary.Transactions.Updated, summary.Transactions.Skipped)
		log.Printf("usuarios: %d created, %d updated, %d skipped",
			summary.Accounts.Created, summary.Accounts.Updated, summary.Accounts.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
}

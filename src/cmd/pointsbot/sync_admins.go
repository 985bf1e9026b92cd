package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func syncAdminsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-admins",
		Short: "Replace the admin list with the configured chat's administrators and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			if _, err := c.syncAdmins(); err != nil {
				return err
			}

			// 從資料庫讀回，確認寫入結果
			ids, err := c.admins.List(nil)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id.Int64())
			}
			return nil
		},
	}
}

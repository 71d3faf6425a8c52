package controllers

import "github.com/spf13/cobra"

type resetFlags struct {
	server bool
	token  bool
	owner  bool
}

func addResetFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("resetServer", false, "Choose the hosting provider again")
	cmd.Flags().Bool("resetToken", false, "Enter the access token again")
	cmd.Flags().Bool("resetOwner", false, "Choose the repository owner again")
}

func readResetFlags(cmd *cobra.Command) resetFlags {
	server, _ := cmd.Flags().GetBool("resetServer")
	token, _ := cmd.Flags().GetBool("resetToken")
	owner, _ := cmd.Flags().GetBool("resetOwner")
	return resetFlags{server: server, token: token, owner: owner}
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

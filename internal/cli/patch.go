package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch URL",
	Short: "Make a PATCH request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeRequest(cmd, http.MethodPatch, args[0])
	},
}

func init() {
	addRequestFlags(patchCmd, true)
}

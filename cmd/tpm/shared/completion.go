package shared

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/internal/store"
)

// ProjectNames returns a completion function that completes registered
// project names, used as ValidArgsFunction by edit, delete, and open.
func ProjectNames(ctx *Context) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		st, err := store.Open(ctx.Dir(), ctx.Logger)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, st.Len())
		for _, p := range st.Projects() {
			names = append(names, p.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

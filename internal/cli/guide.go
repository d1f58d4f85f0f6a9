package cli

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/style"
)

//go:embed guide.txt
var guideText string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, formatValue := rootFlags(cmd)
			if _, err := resolveFormat(formatValue); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Render(strings.TrimSpace(guideText)))
			return nil
		},
	}
}

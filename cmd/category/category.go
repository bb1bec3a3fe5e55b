package category

import (
	"github.com/domdomvn/domdom/internal/service"
	"github.com/spf13/cobra"
)

func NewCategoryCmd(svc *service.Service) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
		Long:  "Manage the expense and income categories transactions are filed under.",
	}

	categoryCmd.AddCommand(NewListCmd(svc))
	categoryCmd.AddCommand(NewCreateCmd(svc))

	return categoryCmd
}

package category

import (
	"fmt"

	"github.com/domdomvn/domdom/internal/constants"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name string
	Icon string
	Type string
}

type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new category",
		Long: `Create a category on the expense or income tab. Names must be
unique within a tab.

Examples:
# Interactive mode
domdom category create

# Quick mode with flags
domdom category create --name "Coffee" --icon coffee --type expense`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Category name")
	cmd.Flags().StringVarP(&flags.Icon, "icon", "i", "", "Category icon identifier")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Category tab: expense or income")

	return cmd
}

func (r *CreateCommandRunner) Run() error {
	name := r.flags.Name
	icon := r.flags.Icon
	categoryType := r.flags.Type

	hasFlags := r.cmd.Flags().Changed("name") || r.cmd.Flags().Changed("icon") || r.cmd.Flags().Changed("type")
	if hasFlags {
		if name == "" || icon == "" || categoryType == "" {
			return fmt.Errorf("when using flags, --name, --icon and --type are all required")
		}
	} else {
		var err error
		categoryType, err = prompts.PromptCategoryTab()
		if err != nil {
			return err
		}

		existing, err := r.svc.Category.List(categoryType)
		if err != nil {
			return err
		}

		name, err = prompts.PromptCategoryName(existing)
		if err != nil {
			return err
		}

		icon, err = prompts.PromptCategoryIcon()
		if err != nil {
			return err
		}
	}

	if !constants.ValidCategoryIcon(icon) {
		return fmt.Errorf("unknown icon: %s (see 'domdom category create' interactive mode for the list)", icon)
	}

	if _, err := r.svc.Category.Create(r.cmd.Context(), name, icon, categoryType); err != nil {
		return err
	}

	pterm.Success.Printf("Category %q created on the %s tab\n", name, categoryType)
	return nil
}

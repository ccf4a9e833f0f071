package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage daily meal templates",
	}

	cmd.AddCommand(
		newTemplateAddCmd(app),
		newTemplateListCmd(app),
		newTemplateInspectCmd(app),
		newTemplateRemoveCmd(app),
	)

	return cmd
}

// parseSlotSpec parses one --slot value of the form "HH:MM|Meal Name|slot_type".
func parseSlotSpec(spec string, order int) (domain.MealSlot, error) {
	parts := strings.SplitN(spec, "|", 3)
	if len(parts) != 3 {
		return domain.MealSlot{}, fmt.Errorf("invalid slot %q, expected HH:MM|Name|slot_type", spec)
	}
	slot := domain.MealSlot{
		TimeLabel: strings.TrimSpace(parts[0]),
		Name:      strings.TrimSpace(parts[1]),
		SlotType:  domain.SlotType(strings.TrimSpace(parts[2])),
		SortOrder: order,
	}
	if !slot.SlotType.Valid() {
		return domain.MealSlot{}, fmt.Errorf("invalid slot type %q", parts[2])
	}
	return slot, nil
}

func newTemplateAddCmd(app *App) *cobra.Command {
	var name string
	var slotSpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new template",
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl := &domain.Template{Name: name}
			for i, spec := range slotSpecs {
				slot, err := parseSlotSpec(spec, i+1)
				if err != nil {
					return err
				}
				tpl.Slots = append(tpl.Slots, slot)
			}
			if err := app.Templates.Create(context.Background(), tpl); err != nil {
				return err
			}
			successf("Created template %s with %d slots [%s]\n", tpl.Name, len(tpl.Slots), tpl.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringArrayVar(&slotSpecs, "slot", nil,
		`Meal slot as "HH:MM|Name|slot_type", repeatable in display order`)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("slot")

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No templates found.")
				return nil
			}
			headerf("%-14s %-16s %s\n", "ID", "NAME", "SLOTS")
			for _, t := range templates {
				fmt.Printf("%-14s %-16s %d\n", t.ID, t.Name, len(t.Slots))
			}
			return nil
		},
	}
}

func newTemplateInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a template's meal schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := app.Templates.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			headerf("%s\n", tpl.Name)
			for _, s := range tpl.Slots {
				fmt.Printf("  %s  %-16s %s\n", s.TimeLabel, s.Name, s.SlotType)
			}
			return nil
		},
	}
}

func newTemplateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Templates.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			successf("Deleted template %s\n", args[0])
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/providers"
	"github.com/brogergvhs/se8/internal/providers/se8"
	"github.com/brogergvhs/se8/internal/ui"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagQuery  string
	flagTag    int
	flagStatus int
	flagSort   int
	flagPage   int
	flagPick   bool
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List series by category or search term",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "free-text search (tag/status/sort are ignored when set)")
	listCmd.Flags().IntVar(&flagTag, "tag", 0, "tag option index (see `se8 filters`)")
	listCmd.Flags().IntVar(&flagStatus, "status", 0, "progress option index (see `se8 filters`)")
	listCmd.Flags().IntVar(&flagSort, "sort", 0, "sort option index (see `se8 filters`)")
	listCmd.Flags().IntVarP(&flagPage, "page", "p", 1, "page number, starting at 1")
	listCmd.Flags().BoolVar(&flagPick, "pick", false, "choose tag, progress and sort interactively")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(config.Options{})
	if err != nil {
		return err
	}

	if flagPick && flagQuery == "" {
		if flagTag, err = pickOption(se8.TagOptions); err != nil {
			return err
		}
		if flagStatus, err = pickOption(se8.ProgressOptions); err != nil {
			return err
		}
		if flagSort, err = pickOption(se8.SortOptions); err != nil {
			return err
		}
	}

	filters := []providers.Filter{
		providers.SelectFilter(se8.TagGroupName, flagTag),
		providers.SelectFilter(se8.ProgressGroupName, flagStatus),
		providers.SortFilter(flagSort),
	}
	if flagQuery != "" {
		filters = append(filters, providers.TitleFilter(flagQuery))
	}

	page, err := s.source.List(cmd.Context(), filters, flagPage)
	if err != nil {
		return err
	}

	if len(page.Manga) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No series on this page.")
		return nil
	}

	rows := make([][]string, 0, len(page.Manga))
	for _, m := range page.Manga {
		rows = append(rows, []string{m.ID, m.Title, m.Cover})
	}

	if err := ui.PrintTable(cmd.OutOrStdout(), []string{"ID", "Title", "Cover"}, rows); err != nil {
		return err
	}

	if page.HasMore {
		fmt.Fprintf(cmd.OutOrStdout(), "\nNext page: --page %d\n", flagPage+1)
	}

	return nil
}

func pickOption(g providers.OptionGroup) (int, error) {
	prompt := promptui.Select{
		Label: g.Name,
		Items: g.Labels(),
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, promptError(g.Name, err)
	}

	return idx, nil
}

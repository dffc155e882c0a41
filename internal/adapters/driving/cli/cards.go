package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

var cardsJSON bool

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List membership cards still to be produced",
	RunE:  runCards,
}

func init() {
	cardsCmd.Flags().BoolVar(&cardsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(cardsCmd)
}

func runCards(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	cards, err := fetchWithSnapshot(context.Background(), cmd, domain.ListCardsTodo, recordService.CardsTodo)
	if err != nil {
		return err
	}

	if cardsJSON {
		return outputJSON(cmd, cards)
	}

	if len(cards) == 0 {
		cmd.Println("No cards to produce.")
		return nil
	}
	for i := range cards {
		cmd.Printf("  [%d] %s\n", cards[i].ID, cards[i].Description)
	}
	cmd.Printf("\n%d card(s)\n", len(cards))
	return nil
}

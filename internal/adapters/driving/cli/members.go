package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

var (
	membersJSON          bool
	membersOperatorsOnly bool
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List registered members",
	RunE:  runMembers,
}

func init() {
	membersCmd.Flags().BoolVar(&membersJSON, "json", false, "output as JSON")
	membersCmd.Flags().BoolVar(&membersOperatorsOnly, "operators", false, "only members flagged as operators")
	rootCmd.AddCommand(membersCmd)
}

func runMembers(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	members, err := fetchWithSnapshot(context.Background(), cmd, domain.ListMembers, recordService.Members)
	if err != nil {
		return err
	}

	if membersOperatorsOnly {
		var operators []domain.Member
		for _, m := range members {
			if m.IsOperator {
				operators = append(operators, m)
			}
		}
		members = operators
	}

	if membersJSON {
		return outputJSON(cmd, members)
	}

	if len(members) == 0 {
		cmd.Println("No members found.")
		return nil
	}
	for i := range members {
		m := &members[i]
		line := "  [" + m.MemberID + "] " + m.FullName
		if m.CardNumber != "" {
			line += "  card " + m.CardNumber
		}
		if m.CardExpiry != "" {
			line += " (expires " + m.CardExpiry + ")"
		}
		if m.IsOperator {
			line += "  operator"
		}
		if !m.IsActive {
			line += "  inactive"
		}
		cmd.Println(line)
	}
	cmd.Printf("\n%d member(s)\n", len(members))
	return nil
}

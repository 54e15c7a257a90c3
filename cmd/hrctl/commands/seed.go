package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	employeeRepo "hr-agent-system/internal/employee/repository/postgre"
	employeeUC "hr-agent-system/internal/employee/usecase"
)

var seedPassword string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo employee roster",
	Long: `Upserts 25 employees across HR, IT, Marketing, Games, Finance and
Operations. E001 and E002 are HR; everyone else is a regular employee.
Existing records with the same ids are replaced.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedPassword, "password", DefaultSeedPassword, "Password for every seeded account")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	uc := employeeUC.New(employeeRepo.New(e.db, e.l), e.l)
	for _, in := range seedEmployees {
		in.Password = seedPassword
		if _, err := uc.Create(ctx, in); err != nil {
			return fmt.Errorf("seed %s: %w", in.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d employees\n", len(seedEmployees))
	return nil
}

// Package commands implements the CLI commands for the eagroute fleet client.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/eagroute/internal/app"
	"go.trai.ch/eagroute/internal/build"
	"go.trai.ch/eagroute/internal/core/domain"
)

// CLI represents the command line interface for eagroute.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options)
	Dashboard(ctx context.Context, opts app.DashboardOptions) error
	Status(ctx context.Context) (app.StatusReport, error)

	Bots(ctx context.Context) ([]domain.Bot, error)
	Bot(ctx context.Context, id int) (app.BotDetail, error)
	MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error)

	Orders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error)
	CancelOrder(ctx context.Context, id int) (domain.Message, error)

	Distance(ctx context.Context, from, to domain.Coord) (domain.Distance, error)
	OptimizeRoutes(ctx context.Context) (map[int]domain.BotRoute, error)
	Efficiency(ctx context.Context) ([]domain.BotEfficiency, error)
	Rebalance(ctx context.Context) (domain.RebalanceResult, error)

	AutoMovement(ctx context.Context) (domain.AutoMovementStatus, error)
	SetAutoMovement(ctx context.Context, running bool) (domain.AutoMovementToggle, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "eagroute",
		Short:         "Operator client for the delivery robot fleet",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Settings file (default ./"+domain.DefaultConfigFile+" when present)")
	flags.Bool("json", false, "Write logs as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.Configure(app.Options{
			ConfigPath: configPath,
			JSONLogs:   jsonLogs,
			Verbose:    verbose,
		})
	}

	rootCmd.AddCommand(c.newDashboardCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newBotsCmd())
	rootCmd.AddCommand(c.newOrdersCmd())
	rootCmd.AddCommand(c.newRoutesCmd())
	rootCmd.AddCommand(c.newAutopilotCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

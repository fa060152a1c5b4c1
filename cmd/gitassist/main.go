package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal"
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/controllers"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	root := appContext.GetRootController()
	bind := root.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(command *cobra.Command, args []string) error {
			return root.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("repo", ".", "Path inside the git working tree to inspect")
	cmd.PersistentFlags().String("format", "human", "Output format: human or json")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Duration("timeout", entities.DefaultQueryTimeout, "Bound for each repository query")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	root.AddFlags(cmd)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &entities.UsageError{Message: err.Error()}
	})
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	cobraRoot.SetArgs(args)
	cobraRoot.SetOut(stdout)
	cobraRoot.SetErr(stderr)

	err := cobraRoot.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
	}
	return controllers.ExitCode(err)
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

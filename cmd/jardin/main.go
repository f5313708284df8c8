package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// errReported marks a failure whose message has already been rendered on screen.
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, cleanup := newRootCmd()
	err := root.ExecuteContext(ctx)
	cleanup()
	if err == nil {
		return
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	}
	stop()
	os.Exit(1)
}

// newRootCmd builds the command tree. cleanup releases what the command that ran
// opened (session store, log file) and is safe to call when nothing was opened.
func newRootCmd() (*cobra.Command, func()) {
	var (
		configPath string
		plain      bool
		a          *app
	)

	root := &cobra.Command{
		Use:           "jardin",
		Short:         "Look after your plants from the terminal",
		Long:          "jardin is the command-line client of Jardín Inteligente: keep a garden, diagnose plants from a photo and talk to the community.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd.Context(), configPath, plain, cmd.OutOrStdout())
			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $JARDIN_CONFIG)")
	root.PersistentFlags().BoolVar(&plain, "plain", false, "never colour the output")

	current := func() *app { return a }
	root.AddCommand(
		newLoginCmd(current),
		newRegisterCmd(current),
		newLogoutCmd(current),
		newWhoamiCmd(current),
		newGardenCmd(current),
		newPlantCmd(current),
		newCaptureCmd(current),
		newDiagnosisCmd(current),
		newCommunityCmd(current),
		newAchievementsCmd(current),
		newMissionsCmd(current),
		newDoctorCmd(current),
	)
	cleanup := func() {
		if a != nil {
			a.Close()
		}
	}
	return root, cleanup
}

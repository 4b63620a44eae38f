package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ikhaya/internal/commands"
	"ikhaya/internal/infrastructure/container"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	build := func(ctx context.Context) (commands.JobSource, error) {
		c, err := container.Build(ctx)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	rootCmd := &cobra.Command{
		Use:   "ikhaya-jobs",
		Short: "Periodic lease and billing jobs",
	}

	rootCmd.AddCommand(
		commands.ListCmd(build),
		commands.RunCmd(build),
		commands.ScheduleCmd(build),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

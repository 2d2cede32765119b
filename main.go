package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"tasnim.dev/dxfacts/cmd"
	"tasnim.dev/dxfacts/internal/module"
)

func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)

	rootCmd := &cobra.Command{
		Use:           "dxfacts",
		Short:         "Gather AWS Direct Connect facts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(cmd.NewVIFsCmd())
	rootCmd.AddCommand(cmd.NewVGWsCmd())
	rootCmd.AddCommand(cmd.NewWhoAmICmd())
	rootCmd.AddCommand(cmd.NewModuleCmd())

	err := rootCmd.ExecuteContext(context.Background())
	klog.Flush()
	if err != nil {
		// Module failures have already been reported on stdout.
		if !errors.Is(err, module.ErrFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

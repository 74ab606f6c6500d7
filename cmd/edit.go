package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var swapCmd = &cobra.Command{
	Use:   "swap <id> <id>",
	Short: "Swap the order of two entries logged on the same day",
	Args:  cobra.ExactArgs(2),
	RunE:  runSwap,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runSwap(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ids := make([]string, len(args))
	for i, arg := range args {
		if ids[i], err = resolveID(cmd.Context(), store, arg); err != nil {
			return err
		}
	}
	if ids[0] == ids[1] {
		return fmt.Errorf("cannot swap an entry with itself")
	}

	if err := store.SwapOrder(cmd.Context(), ids[0], ids[1]); err != nil {
		return err
	}
	logger.Debug("Swapped entries", zap.Strings("ids", ids))
	fmt.Fprintf(cmd.OutOrStdout(), "Swapped [%s] and [%s]\n", shortID(ids[0]), shortID(ids[1]))
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := resolveID(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(cmd.Context(), id); err != nil {
		return err
	}
	logger.Debug("Deleted entry", zap.String("id", id))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%s]\n", shortID(id))
	return nil
}

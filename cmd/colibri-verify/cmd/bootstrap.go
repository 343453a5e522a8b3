package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corpus-core/colibri-stateless-sub002/internal/chainspec"
	"github.com/corpus-core/colibri-stateless-sub002/internal/verify"
)

var (
	registryFile string
	syncDataFile string
	chainID      uint64
)

func bootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Feed a sync_data blob into the trust engine and report the verdict",
		Args:  cobra.ExactArgs(0),
		RunE:  runBootstrap,
	}
	cmd.Flags().StringVar(&registryFile, "registry", "", "Path to the chain-registry config file")
	cmd.Flags().StringVar(&syncDataFile, "sync-data", "", "Path to a client-updates blob")
	cmd.Flags().Uint64Var(&chainID, "chain", 1, "Chain id to verify against")
	cmd.MarkFlagRequired("registry")
	cmd.MarkFlagRequired("sync-data")
	return cmd
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	registry, err := chainspec.LoadFile(registryFile)
	if err != nil {
		return fmt.Errorf("colibri-verify: %w", err)
	}
	c, ok := registry.Get(chainID)
	if !ok {
		return fmt.Errorf("colibri-verify: chain %d not found in %s", chainID, registryFile)
	}

	blob, err := os.ReadFile(syncDataFile)
	if err != nil {
		return fmt.Errorf("colibri-verify: %w", err)
	}

	digests := make(map[[4]byte]chainspec.Fork, len(c.Forks))
	for _, f := range c.Forks {
		digests[f.Version] = f.Fork
	}

	methods := verify.NewMethods()
	methods.Set(chainID, verify.DefaultMainnetMethods())
	d := verify.NewDispatcher(registry, methods)

	res := d.Verify(&verify.Context{ChainID: chainID, SyncData: blob, SyncForks: digests})
	switch res.Outcome {
	case verify.Success:
		period, ok := d.Store.LatestPeriod(chainID)
		log.WithFields(log.Fields{"chain": chainID, "latestPeriod": period, "known": ok}).Info("verify: sync_data accepted")
		fmt.Println("ok")
	case verify.Pending:
		fmt.Printf("pending: %d outstanding request(s)\n", len(res.Pending))
	default:
		return fmt.Errorf("colibri-verify: verify failed: %v", res.Err)
	}
	return nil
}

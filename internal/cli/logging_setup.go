package cli

import (
	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/config"
	"github.com/commutrace/commutrace/internal/store"
)

// setupLogging configures the global logger from the persisted config,
// with the --debug flag overriding the configured level.
func setupLogging(cmd *cobra.Command) error {
	loggingCfg := config.GetGlobal().Logging

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
	}

	return config.InitLogger(loggingCfg)
}

// openRecordStore opens the record log under the configured blob-store
// directory.
func openRecordStore() (*store.RecordStore, error) {
	dir, err := config.StoreDir()
	if err != nil {
		return nil, err
	}

	kv, err := store.NewFileKV(dir)
	if err != nil {
		return nil, err
	}

	return store.NewRecordStore(kv), nil
}

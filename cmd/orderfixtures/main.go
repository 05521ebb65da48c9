package main

import (
	"fmt"
	"os"

	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "orderfixtures",
	Short: "Generate 0x order fixtures from scenarios",
	Long: `orderfixtures turns order scenarios into fully populated, unsigned 0x orders
against a fixture of deployed test contracts, and inspects the authorization
state of the TokenTransferProxy.

Configuration is read from the environment:
	ORDERFIXTURES_RPC_URL                       JSON-RPC endpoint
	ORDERFIXTURES_NETWORK_ID                    network of the contract artifacts
	ORDERFIXTURES_TOKEN_TRANSFER_PROXY_ADDRESS  explicit proxy address
	ORDERFIXTURES_LOG_LEVEL                     debug, info, warn...`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func setupLogging() error {
	level, err := orderfixtures.LoadLogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show orderfixtures version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\n", version)
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

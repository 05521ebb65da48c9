package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/spf13/cobra"
)

const proxyCallTimeout = 30 * time.Second

// config is only loaded for commands that talk to a node
var config *orderfixtures.Config

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Inspect the TokenTransferProxy authorization state",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		cfg, err := orderfixtures.LoadConfig()
		if err != nil {
			return err
		}
		config = cfg
		return nil
	},
}

var proxyAuthorizedCmd = &cobra.Command{
	Use:   "authorized [exchange address]",
	Short: "Check whether an exchange is authorized by the proxy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("invalid exchange address: %s", args[0])
		}

		client, err := orderfixtures.NewClient(config)
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), proxyCallTimeout)
		defer cancel()

		authorized, err := client.IsExchangeAuthorized(ctx, common.HexToAddress(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(authorized)
		return nil
	},
}

var proxyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every exchange authorized by the proxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := orderfixtures.NewClient(config)
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), proxyCallTimeout)
		defer cancel()

		proxy := client.TokenTransferProxy()
		proxyAddr, err := proxy.ContractAddress()
		if err != nil {
			return err
		}
		addrs, err := proxy.GetAuthorizedAddresses(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("TokenTransferProxy %s on network %d\n", proxyAddr.Hex(), client.NetworkID())
		for _, addr := range addrs {
			fmt.Println(addr.Hex())
		}
		return nil
	},
}

func init() {
	proxyCmd.AddCommand(proxyAuthorizedCmd, proxyListCmd)
	rootCmd.AddCommand(proxyCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fixturePath  string
	scenarioPath string
	allScenarios bool
	summaryOnly  bool
	scenarioFlag orderfixtures.OrderScenario
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate orders from a fixture and one or every scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := loadFixture(fixturePath)
		if err != nil {
			return err
		}

		resolver, err := orderfixtures.NewScenarioResolver(fixture, nil)
		if err != nil {
			return err
		}

		scenarios := []orderfixtures.OrderScenario{scenarioFlag}
		switch {
		case allScenarios:
			scenarios = orderfixtures.AllScenarios()
		case scenarioPath != "":
			s, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			scenarios = []orderfixtures.OrderScenario{s}
		}

		runID := uuid.New()
		logger := log.WithField("run", runID.String())
		logger.WithField("scenarios", len(scenarios)).Info("generating orders")

		if summaryOnly {
			return printSummary(resolver, scenarios)
		}

		enc := json.NewEncoder(os.Stdout)
		for _, s := range scenarios {
			order, err := resolver.GenerateOrder(s)
			if err != nil {
				return err
			}
			if err := enc.Encode(orderfixtures.NewOrderJSON(order)); err != nil {
				return err
			}
		}

		logger.Info("orders generated")
		return nil
	},
}

func printSummary(resolver *orderfixtures.ScenarioResolver, scenarios []orderfixtures.OrderScenario) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "HASH\tMAKER ASSET\tMAKER AMOUNT\tTAKER ASSET\tTAKER AMOUNT\tTAKER")
	for _, s := range scenarios {
		order, err := resolver.GenerateOrder(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			chain.OrderHash(order).Hex(),
			s.MakerAssetDataScenario,
			orderfixtures.FormatUnits(order.MakerAssetAmount, s.MakerAssetDataScenario.Decimals()),
			s.TakerAssetDataScenario,
			orderfixtures.FormatUnits(order.TakerAssetAmount, s.TakerAssetDataScenario.Decimals()),
			order.TakerAddress.Hex(),
		)
	}
	return w.Flush()
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&fixturePath, "fixture", "f", "", "path of the fixture JSON file")
	flags.StringVarP(&scenarioPath, "scenario", "s", "", "path of a scenario JSON file, overrides the scenario flags")
	flags.BoolVar(&allScenarios, "all", false, "generate one order for every scenario combination")
	flags.BoolVar(&summaryOnly, "summary", false, "print a table with whole-unit amounts instead of JSON")

	flags.StringVar((*string)(&scenarioFlag.FeeRecipientScenario), "fee-recipient", string(orderfixtures.FeeRecipientAddressScenarioBurnAddress), "BURN_ADDRESS or ETH_USER_ADDRESS")
	flags.StringVar((*string)(&scenarioFlag.MakerAssetDataScenario), "maker-asset", string(orderfixtures.AssetDataScenarioZRXFeeToken), "ZRX_FEE_TOKEN, ERC20_NON_ZRX_EIGHTEEN_DECIMALS, ERC20_FIVE_DECIMALS or ERC721")
	flags.StringVar((*string)(&scenarioFlag.TakerAssetDataScenario), "taker-asset", string(orderfixtures.AssetDataScenarioERC20NonZRXEighteenDecimals), "same values as --maker-asset")
	flags.StringVar((*string)(&scenarioFlag.MakerAssetAmountScenario), "maker-amount", string(orderfixtures.OrderAssetAmountScenarioLarge), "LARGE, SMALL or ZERO")
	flags.StringVar((*string)(&scenarioFlag.TakerAssetAmountScenario), "taker-amount", string(orderfixtures.OrderAssetAmountScenarioLarge), "LARGE, SMALL or ZERO")
	flags.StringVar((*string)(&scenarioFlag.MakerFeeScenario), "maker-fee", string(orderfixtures.OrderAssetAmountScenarioZero), "LARGE, SMALL or ZERO")
	flags.StringVar((*string)(&scenarioFlag.TakerFeeScenario), "taker-fee", string(orderfixtures.OrderAssetAmountScenarioZero), "LARGE, SMALL or ZERO")
	flags.StringVar((*string)(&scenarioFlag.ExpirationTimeSecondsScenario), "expiration", string(orderfixtures.ExpirationTimeSecondsScenarioInFuture), "IN_FUTURE or IN_PAST")
	flags.StringVar((*string)(&scenarioFlag.TakerScenario), "taker", string(orderfixtures.TakerScenarioUnspecified), "CORRECTLY_SPECIFIED, INCORRECTLY_SPECIFIED or UNSPECIFIED")

	_ = generateCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(generateCmd)
}

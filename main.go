package main

import (
	"fmt"
	"os"
	"slices"

	"quantumguard-tui/config"
	"quantumguard-tui/ledger"
	"quantumguard-tui/wallet"
	"quantumguard-tui/walletconnect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

type options struct {
	configPath string
	algodURL   string
	algodToken string
	bridgeURL  string
	demo       bool
	logger     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "quantumguard",
		Short:         "Quantum-resistant Algorand wallet front end",
		Long:          `QuantumGuard pairs an Algorand wallet over WalletConnect and shows its balance next to the AI Guardian dashboards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(loadConfig(cmd, opts), opts.configPath)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath(), "config file")
	f.StringVar(&opts.algodURL, "algod", "", "algod endpoint (overrides ALGOD_URL)")
	f.StringVar(&opts.algodToken, "algod-token", "", "algod API token (overrides ALGOD_TOKEN)")
	f.StringVar(&opts.bridgeURL, "bridge", "", "WalletConnect bridge (overrides WC_BRIDGE_URL)")
	f.BoolVar(&opts.demo, "demo", false, "connect a locally generated demo account instead of a real wallet")
	f.BoolVar(&opts.logger, "log", false, "show the log panel")

	return cmd
}

// loadConfig layers the config file, the environment and explicit flags
func loadConfig(cmd *cobra.Command, opts options) config.Config {
	cfg := config.LoadOrCreate(opts.configPath).ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("algod") {
		cfg.AlgodURL = opts.algodURL
	}
	if flags.Changed("algod-token") {
		cfg.AlgodToken = opts.algodToken
	}
	if flags.Changed("bridge") {
		cfg.BridgeURL = opts.bridgeURL
	}
	if opts.demo {
		cfg.Provider = config.ProviderDemo
	}
	if flags.Changed("log") {
		cfg.Logger = opts.logger
	}
	return cfg
}

// newProvider picks the wallet provider named in the config
func newProvider(cfg config.Config, logger *log.Logger) wallet.Provider {
	switch cfg.Provider {
	case config.ProviderDemo:
		return wallet.DemoProvider{}
	case config.ProviderWalletConnect:
	default:
		logger.Warn("Unknown provider, using WalletConnect", "provider", cfg.Provider)
	}
	return walletconnect.NewClient(cfg.BridgeURL,
		walletconnect.WithMeta(clientMeta(cfg)),
		walletconnect.WithLogger(logger.WithPrefix("walletconnect")),
	)
}

// clientMeta is what the wallet shows when asked to pair
func clientMeta(cfg config.Config) walletconnect.ClientMeta {
	meta := walletconnect.DefaultMeta
	meta.Icons = slices.Clone(meta.Icons)
	if cfg.ClientName != "" {
		meta.Name = cfg.ClientName
	}
	if cfg.Network != "" {
		meta.Description += " (" + cfg.Network + ")"
	}
	return meta
}

func run(cfg config.Config, configPath string) error {
	buf := &lockedBuffer{}
	logger := newLogger(buf)

	var client *ledger.Client
	var fetcher wallet.AccountFetcher
	if cfg.AlgodURL != "" {
		c, err := ledger.New(cfg.AlgodURL, cfg.AlgodToken)
		if err != nil {
			logger.Error("Invalid algod endpoint", "url", cfg.AlgodURL, "err", err)
		} else {
			client, fetcher = c, c
		}
	}

	machine := wallet.NewMachine(newProvider(cfg, logger), fetcher, logger)

	m := newModel(cfg, configPath, machine, client, logger, buf)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

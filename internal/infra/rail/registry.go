package rail

import (
	"context"
	"log/slog"
	"strings"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra/rail/btc"
	"tourpay/internal/infra/rail/card"
	"tourpay/internal/infra/rail/eth"
	"tourpay/internal/infra/rail/solana"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stripe/stripe-go/v76/client"
)

// Clients holds the SDK clients shared by verifiers, the card processor and the webhook verifier.
type Clients struct {
	Stripe   *client.API
	Solana   *rpc.Client
	Esplora  *btc.Client
	Ethereum *ethclient.Client
}

// Dial opens every rail whose credentials are configured. Missing credentials leave the
// rail nil; it then reports itself unavailable at claim time.
func Dial(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Clients, func(), error) {
	c := &Clients{}

	if cfg.Stripe.SecretKey != "" {
		c.Stripe = client.New(cfg.Stripe.SecretKey, nil)
	}
	if cfg.Solana.RPCURL != "" {
		c.Solana = rpc.New(cfg.Solana.RPCURL)
	}
	if cfg.Bitcoin.EsploraURL != "" {
		c.Esplora = btc.NewClient(cfg.Bitcoin.EsploraURL)
	}
	if cfg.Ethereum.RPCURL != "" {
		ec, err := ethclient.DialContext(ctx, cfg.Ethereum.RPCURL)
		if err != nil {
			return nil, nil, errs.Wrap(err, "dial ethereum rpc")
		}
		c.Ethereum = ec
	}

	logger.Info("rails configured",
		"card", c.Stripe != nil,
		"fast_chain", c.Solana != nil,
		"utxo_chain", c.Esplora != nil,
		"account_chain", c.Ethereum != nil,
	)

	cleanup := func() {
		if c.Solana != nil {
			_ = c.Solana.Close()
		}
		if c.Ethereum != nil {
			c.Ethereum.Close()
		}
	}
	return c, cleanup, nil
}

func NewVerifiers(c *Clients, cfg config.Config) (*shared.Verifiers, error) {
	byRail := map[payment.Rail]shared.Verifier{}

	if c.Stripe != nil {
		byRail[payment.RailCard] = card.NewVerifier(c.Stripe.PaymentIntents)
	}
	if c.Solana != nil {
		v, err := solana.NewVerifier(c.Solana, cfg.Solana.Wallet)
		if err != nil {
			return nil, err
		}
		byRail[payment.RailFastChain] = v
	}
	if c.Esplora != nil {
		byRail[payment.RailUTXOChain] = btc.NewVerifier(c.Esplora, cfg.Bitcoin.Wallet)
	}
	if c.Ethereum != nil {
		v, err := eth.NewVerifier(c.Ethereum, cfg.Ethereum.Wallet, cfg.Ethereum.MinConfirmations)
		if err != nil {
			return nil, err
		}
		byRail[payment.RailAccountChain] = v
	}

	return shared.NewVerifiers(byRail), nil
}

// NewCardProcessor returns nil when the card rail is not configured.
func NewCardProcessor(c *Clients) shared.CardProcessor {
	if c.Stripe == nil {
		return nil
	}
	return card.NewProcessor(c.Stripe.PaymentIntents, c.Stripe.Refunds)
}

func NewWebhookVerifier(cfg config.Config) shared.WebhookVerifier {
	if cfg.Stripe.WebhookSecret == "" {
		return nil
	}
	return card.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)
}

// AddressBook serves the configured receiving wallets.
type AddressBook struct {
	entries map[payment.Rail]addressEntry
}

type addressEntry struct {
	address string
	network string
}

func NewAddressBook(cfg config.Config) *AddressBook {
	ethNetwork := "mainnet"
	if strings.Contains(strings.ToLower(cfg.Ethereum.RPCURL), "sepolia") {
		ethNetwork = "sepolia"
	}

	entries := map[payment.Rail]addressEntry{}
	add := func(r payment.Rail, address, network string) {
		if address != "" {
			entries[r] = addressEntry{address: address, network: network}
		}
	}
	add(payment.RailFastChain, cfg.Solana.Wallet, cfg.Solana.Cluster)
	add(payment.RailUTXOChain, cfg.Bitcoin.Wallet, "mainnet")
	add(payment.RailAccountChain, cfg.Ethereum.Wallet, ethNetwork)

	return &AddressBook{entries: entries}
}

func (b *AddressBook) Address(r payment.Rail) (string, string, bool) {
	e, ok := b.entries[r]
	return e.address, e.network, ok
}

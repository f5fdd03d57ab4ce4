// Package bot is the thin Telegram dispatch layer: it parses commands,
// invokes the core services and reports their structured results. All
// economic decisions live in the services; nothing here touches the store.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/service"
	"github.com/monopolygame/monopolybot/internal/service/depositservice"
	"github.com/monopolygame/monopolybot/internal/service/ledgerservice"
	"github.com/monopolygame/monopolybot/internal/service/propertyservice"
	"github.com/monopolygame/monopolybot/internal/service/withdrawalservice"
	"github.com/monopolygame/monopolybot/internal/session"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	srv      *service.Services
	sessions *session.Store
}

func New(token string, srv *service.Services, sessions *session.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("can't create bot api: %w", err)
	}
	return &Bot{
		api:      api,
		srv:      srv,
		sessions: sessions,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	zap.L().Info("Bot started", zap.String("username", b.api.Self.UserName))
	go b.run(ctx)
}

func (b *Bot) run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	if !msg.IsCommand() {
		if state, ok := b.sessions.Get(userID); ok && state.Step == session.StepWithdrawalWallet {
			b.completeWithdrawal(ctx, msg, state)
			return
		}
		b.reply(msg.Chat.ID, "Use /help for the command list")
		return
	}

	args := strings.Fields(msg.CommandArguments())
	switch msg.Command() {
	case "start":
		refCode := ""
		if len(args) > 0 {
			refCode = args[0]
		}
		user, err := b.srv.User.Register(ctx, userID, refCode)
		if err != nil {
			b.replyErr(msg.Chat.ID, err)
			return
		}
		b.reply(msg.Chat.ID, fmt.Sprintf("Welcome! Your referral code: %s", user.ReferralCode))
	case "help":
		b.reply(msg.Chat.ID, "/balance /buy <n> /buyservice <n> /upgrade <n> /claim <n> /deposit <usd> <currency> /withdraw <amount> <currency> /withdrawals /language <en|ru>")
	case "balance":
		user, err := b.srv.User.Get(ctx, userID)
		if err != nil || user == nil {
			b.replyErr(msg.Chat.ID, err)
			return
		}
		b.reply(msg.Chat.ID, fmt.Sprintf("Balance: %d MC", user.Balance))
	case "buy":
		b.withIndex(args, msg.Chat.ID, func(idx int) {
			_, err := b.srv.Property.BuyProperty(ctx, userID, idx)
			b.replyResult(msg.Chat.ID, "Property purchased", err)
		})
	case "buyservice":
		b.withIndex(args, msg.Chat.ID, func(idx int) {
			_, err := b.srv.Property.BuyService(ctx, userID, idx)
			b.replyResult(msg.Chat.ID, "Service purchased", err)
		})
	case "upgrade":
		b.withIndex(args, msg.Chat.ID, func(idx int) {
			prop, err := b.srv.Property.Upgrade(ctx, userID, idx)
			if err != nil {
				b.replyErr(msg.Chat.ID, err)
				return
			}
			b.reply(msg.Chat.ID, fmt.Sprintf("Upgraded to level %d", prop.Level))
		})
	case "claim":
		b.withIndex(args, msg.Chat.ID, func(idx int) {
			claimed, err := b.srv.Property.Claim(ctx, userID, idx)
			if err != nil {
				b.replyErr(msg.Chat.ID, err)
				return
			}
			b.reply(msg.Chat.ID, fmt.Sprintf("Claimed %d MC", claimed))
		})
	case "deposit":
		if len(args) < 2 {
			b.reply(msg.Chat.ID, "Usage: /deposit <usd> <currency>")
			return
		}
		amountUSD, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			b.reply(msg.Chat.ID, "Usage: /deposit <usd> <currency>")
			return
		}
		dep, err := b.srv.Deposit.CreateDeposit(ctx, userID, amountUSD, args[1])
		if err != nil {
			b.replyErr(msg.Chat.ID, err)
			return
		}
		b.reply(msg.Chat.ID, fmt.Sprintf("Send %.8f %s to %s", dep.PayAmount, dep.PayCurrency, dep.PayAddress))
	case "withdraw":
		if len(args) < 2 {
			b.reply(msg.Chat.ID, "Usage: /withdraw <amount> <currency>")
			return
		}
		b.sessions.Set(userID, session.State{
			Step: session.StepWithdrawalWallet,
			Data: map[string]string{"amount": args[0], "currency": args[1]},
		})
		b.reply(msg.Chat.ID, "Send the destination wallet address")
	case "withdrawals":
		wds, err := b.srv.Withdrawal.History(ctx, userID)
		if err != nil {
			b.replyErr(msg.Chat.ID, err)
			return
		}
		if len(wds) == 0 {
			b.reply(msg.Chat.ID, "No withdrawals yet")
			return
		}
		var sb strings.Builder
		for _, wd := range wds {
			fmt.Fprintf(&sb, "#%d %d MC %s %s\n", wd.ID, wd.AmountMC, wd.Currency, wd.Status)
		}
		b.reply(msg.Chat.ID, sb.String())
	case "language":
		lang := ""
		if len(args) > 0 {
			lang = strings.ToLower(args[0])
		}
		if lang != "en" && lang != "ru" {
			b.reply(msg.Chat.ID, "Usage: /language <en|ru>")
			return
		}
		b.replyResult(msg.Chat.ID, "Language updated", b.srv.User.SetLanguage(ctx, userID, lang))
	case "wprocess":
		if len(args) < 2 {
			return
		}
		b.adminAction(msg.Chat.ID, args[0], func(id int64) error {
			return b.srv.Withdrawal.Process(ctx, userID, id, args[1])
		})
	case "wcancel":
		if len(args) < 1 {
			return
		}
		b.adminAction(msg.Chat.ID, args[0], func(id int64) error {
			return b.srv.Withdrawal.Cancel(ctx, userID, id)
		})
	case "wrefund":
		if len(args) < 1 {
			return
		}
		b.adminAction(msg.Chat.ID, args[0], func(id int64) error {
			return b.srv.Withdrawal.Refund(ctx, userID, id)
		})
	default:
		b.reply(msg.Chat.ID, "Unknown command, see /help")
	}
}

func (b *Bot) completeWithdrawal(ctx context.Context, msg *tgbotapi.Message, state session.State) {
	userID := msg.From.ID
	defer b.sessions.Clear(userID)

	amount, err := strconv.ParseInt(state.Data["amount"], 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Invalid withdrawal amount")
		return
	}
	wd, err := b.srv.Withdrawal.Create(ctx, userID, domain.MC(amount), state.Data["currency"], strings.TrimSpace(msg.Text))
	if err != nil {
		b.replyErr(msg.Chat.ID, err)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("Withdrawal #%d created", wd.ID))
}

func (b *Bot) withIndex(args []string, chatID int64, fn func(idx int)) {
	if len(args) < 1 {
		b.reply(chatID, "Missing index argument")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		b.reply(chatID, "Index must be a number")
		return
	}
	fn(idx)
}

func (b *Bot) adminAction(chatID int64, rawID string, fn func(id int64) error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return
	}
	b.replyResult(chatID, "Done", fn(id))
}

func (b *Bot) replyResult(chatID int64, success string, err error) {
	if err != nil {
		b.replyErr(chatID, err)
		return
	}
	b.reply(chatID, success)
}

func (b *Bot) replyErr(chatID int64, err error) {
	b.reply(chatID, errText(err))
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		zap.L().Error("failed to send message", zap.Error(err))
	}
}

// errText maps service failures to short user-facing lines; the structured
// detail (shortfall, missing counts) comes from the typed errors.
func errText(err error) string {
	var insufficient *ledgerservice.InsufficientBalanceError
	var requirement *propertyservice.UpgradeRequirementError
	var minWithdrawal *withdrawalservice.MinWithdrawalError
	var cooldown *withdrawalservice.CooldownError
	var minDeposit *depositservice.MinDepositError

	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough MC: %d more needed", insufficient.Needed)
	case errors.As(err, &requirement):
		return fmt.Sprintf("Color set incomplete: %d missing, %d under level 3", requirement.Missing, requirement.UnderLeveled)
	case errors.As(err, &minWithdrawal):
		return fmt.Sprintf("Minimum withdrawal is %d MC", minWithdrawal.Min)
	case errors.As(err, &cooldown):
		return "Withdrawal cooldown is active, try later"
	case errors.As(err, &minDeposit):
		return fmt.Sprintf("Minimum deposit is %.2f USD", minDeposit.Min)
	case errors.Is(err, propertyservice.ErrAlreadyOwned):
		return "Already owned"
	case errors.Is(err, propertyservice.ErrMaxLevel):
		return "Already at max level"
	case errors.Is(err, propertyservice.ErrStarterNotUpgradable):
		return "The starter property can't be upgraded"
	case errors.Is(err, propertyservice.ErrNotOwned):
		return "You don't own that property"
	case errors.Is(err, propertyservice.ErrNothingToClaim):
		return "Nothing to claim yet"
	case errors.Is(err, propertyservice.ErrConflict):
		return "Busy, try again in a moment"
	case errors.Is(err, withdrawalservice.ErrPendingWithdrawalExists):
		return "You already have a pending withdrawal"
	case errors.Is(err, withdrawalservice.ErrUnsupportedCurrency):
		return "Unsupported currency"
	case errors.Is(err, withdrawalservice.ErrInvalidWallet):
		return "That wallet address doesn't look right"
	default:
		zap.L().Error("command failed", zap.Error(err))
		return "Something went wrong, try again later"
	}
}

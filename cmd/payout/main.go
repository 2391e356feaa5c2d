package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"admin/internal/affiliate"
	"admin/internal/cache"
	"admin/internal/domain"
	"admin/internal/forms"
	"admin/internal/infra"
	"admin/internal/view"
)

type options struct {
	list   bool
	status string
	page   int
	limit  int
	id     string
	action string
	proof  string
	reason string
}

func main() {
	var opts options
	flag.BoolVar(&opts.list, "list", false, "list withdrawals")
	flag.StringVar(&opts.status, "status", "pending", "status filter for -list (pending, approved, completed, rejected, all)")
	flag.IntVar(&opts.page, "page", 1, "page number for -list")
	flag.StringVar(&opts.id, "id", "", "withdrawal ID to process")
	flag.StringVar(&opts.action, "action", "", "decision for -id (approve, reject, complete)")
	flag.StringVar(&opts.proof, "proof", "", "transfer proof URL, required with -action complete")
	flag.StringVar(&opts.reason, "reason", "", "rejection reason, required with -action reject")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	opts.limit = cfg.PageSize
	logger := infra.NewLogger("cli").With().Str("cmd", "payout").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout+5*time.Second)
	defer cancel()

	// Shares the dashboard's cache so processed withdrawals drop its cached lists.
	readCache, closeCache, err := cache.Open(ctx, cfg.RedisURL, cfg.CacheTTL, &logger)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect redis: %w", err))
	}
	defer closeCache()

	client, err := affiliate.NewClient(affiliate.Options{
		BaseURL:        cfg.APIBaseURL,
		Token:          cfg.APIToken,
		Logger:         &logger,
		Cache:          readCache,
		RequestTimeout: cfg.APITimeout,
	})
	if err != nil {
		exitWithError(err)
	}

	if err := run(ctx, client, opts, os.Stdout); err != nil {
		exitWithError(err)
	}
}

func run(ctx context.Context, client *affiliate.Client, opts options, out io.Writer) error {
	switch {
	case opts.list && opts.id != "":
		return errors.New("use either -list or -id, not both")
	case opts.list:
		return listWithdrawals(ctx, client, opts, out)
	case strings.TrimSpace(opts.id) != "":
		return processWithdrawal(ctx, client, opts, out)
	default:
		return errors.New("either -list or -id must be provided")
	}
}

func listWithdrawals(ctx context.Context, client *affiliate.Client, opts options, out io.Writer) error {
	status, ok := domain.ParseWithdrawalStatus(opts.status)
	if raw := strings.TrimSpace(opts.status); !ok && raw != "" && !strings.EqualFold(raw, "all") {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, opts.status)
	}
	if opts.page < 1 {
		return fmt.Errorf("%w: -page must be at least 1, got %d", domain.ErrInvalidInput, opts.page)
	}
	page, err := client.ListWithdrawals(ctx, status, domain.Pagination{Page: opts.page, Limit: opts.limit})
	if err != nil {
		return fmt.Errorf("failed to list withdrawals: %w", err)
	}
	f := view.NewFormatter("id")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tAMOUNT\tBANK\tACCOUNT\tSTATUS\tREQUESTED")
	for _, w := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			w.ID, w.UserName, f.Currency(w.Amount), w.BankName, w.AccountNumber, w.Status, f.Date(w.CreatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "page %d of %d (%d total)\n", opts.page, page.PageCount(), page.Total)
	return nil
}

func processWithdrawal(ctx context.Context, client *affiliate.Client, opts options, out io.Writer) error {
	action, decision, err := forms.Decide(opts.action, opts.proof, opts.reason)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(opts.id)
	if err := client.ProcessWithdrawal(ctx, id, decision); err != nil {
		return fmt.Errorf("failed to process withdrawal: %w", err)
	}
	fmt.Fprintf(out, "Withdrawal %s %s successfully\n", id, action.PastTense())
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

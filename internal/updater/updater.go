// Package updater orchestrates the remote rename workflow: list active
// ad accounts, rewrite each name, and push back the ones that changed.
// A dry run computes and reports intended changes without any mutating
// call; a live run pushes them one at a time with a courtesy delay.
package updater

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"adrename/internal/meta"
	"adrename/internal/rename"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountAPI is what the updater needs from the ads platform. The meta
// Client is the one production implementation; tests substitute fakes.
type AccountAPI interface {
	ListAdAccounts(ctx context.Context) ([]meta.AdAccount, error)
	RenameAdAccount(ctx context.Context, accountID, newName string) error
}

// Change records one account whose name the rewrite rule altered.
type Change struct {
	ID       string
	Original string
	Updated  string
}

// Summary is the outcome of one Run.
type Summary struct {
	Total     int
	Changed   int
	Unchanged int
	Errors    int
	Changes   []Change
}

// Updater drives the list -> rewrite -> push workflow. Strictly
// sequential; one API call at a time.
type Updater struct {
	api   AccountAPI
	log   *zap.Logger
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

// New creates an Updater with a 1s delay between live mutations,
// reporting to stdout.
func New(api AccountAPI, log *zap.Logger) *Updater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater{
		api:   api,
		log:   log,
		out:   os.Stdout,
		delay: time.Second,
		sleep: time.Sleep,
	}
}

// SetDelay overrides the pause inserted after each live rename.
func (u *Updater) SetDelay(d time.Duration) {
	u.delay = d
}

// SetOutput redirects the per-account progress lines.
func (u *Updater) SetOutput(w io.Writer) {
	u.out = w
}

// ListAccounts fetches the active ad accounts. A listing failure is
// logged and degrades to an empty slice rather than aborting the run.
func (u *Updater) ListAccounts(ctx context.Context) []meta.AdAccount {
	accounts, err := u.api.ListAdAccounts(ctx)
	if err != nil {
		u.log.Error("failed to list ad accounts", zap.Error(err))
		fmt.Fprintf(u.out, "Error retrieving ad accounts: %v\n", err)
		return nil
	}
	return accounts
}

// PushRename updates one account's name, reporting success. A transport
// or API failure is logged and returns false; it never aborts the batch.
func (u *Updater) PushRename(ctx context.Context, accountID, newName string) bool {
	if err := u.api.RenameAdAccount(ctx, accountID, newName); err != nil {
		u.log.Error("failed to rename ad account",
			zap.String("account_id", accountID),
			zap.Error(err))
		return false
	}
	return true
}

// Run executes the workflow over every active account in listing order.
// In dry-run mode no mutating call is made and every differing name
// counts as changed. In live mode each changed account gets exactly one
// push, followed by the configured delay; a failed push counts as an
// error and the loop continues with the next account. All changed pairs
// are accumulated in Summary.Changes regardless of mode.
func (u *Updater) Run(ctx context.Context, dryRun bool) Summary {
	runID := uuid.NewString()
	log := u.log.With(zap.String("run_id", runID), zap.Bool("dry_run", dryRun))

	accounts := u.ListAccounts(ctx)
	summary := Summary{Total: len(accounts)}

	log.Info("processing ad accounts", zap.Int("total", len(accounts)))
	fmt.Fprintf(u.out, "Found %d active ad accounts\n", len(accounts))

	for _, account := range accounts {
		updated := rename.Rewrite(account.Name)
		if updated == account.Name {
			fmt.Fprintf(u.out, "NO CHANGE: %s\n", account.Name)
			summary.Unchanged++
			continue
		}

		fmt.Fprintf(u.out, "WOULD CHANGE: %s -> %s\n", account.Name, updated)
		summary.Changes = append(summary.Changes, Change{
			ID:       account.ID,
			Original: account.Name,
			Updated:  updated,
		})

		if dryRun {
			summary.Changed++
			continue
		}

		if u.PushRename(ctx, account.ID, updated) {
			fmt.Fprintf(u.out, "Updated %s\n", account.ID)
			summary.Changed++
		} else {
			fmt.Fprintf(u.out, "Failed to update %s\n", account.ID)
			summary.Errors++
		}

		// Rate-limit courtesy between mutating calls.
		u.sleep(u.delay)
	}

	log.Info("run complete",
		zap.Int("changed", summary.Changed),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("errors", summary.Errors))

	return summary
}

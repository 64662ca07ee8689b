package updater

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"adrename/internal/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI is a scripted AccountAPI for driver tests.
type fakeAPI struct {
	accounts []meta.AdAccount
	listErr  error

	renames    []Change
	renameErrs map[string]error // account id -> error
}

func (f *fakeAPI) ListAdAccounts(ctx context.Context) ([]meta.AdAccount, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.accounts, nil
}

func (f *fakeAPI) RenameAdAccount(ctx context.Context, accountID, newName string) error {
	if err := f.renameErrs[accountID]; err != nil {
		return err
	}
	f.renames = append(f.renames, Change{ID: accountID, Updated: newName})
	return nil
}

func newTestUpdater(api AccountAPI) (*Updater, *bytes.Buffer, *int) {
	u := New(api, zap.NewNop())
	var buf bytes.Buffer
	u.SetOutput(&buf)

	sleeps := 0
	u.sleep = func(d time.Duration) { sleeps++ }
	return u, &buf, &sleeps
}

func TestRunDryRunNeverPushes(t *testing.T) {
	api := &fakeAPI{
		accounts: []meta.AdAccount{
			{ID: "act_1", Name: "Washington Yakima Mission - North America West Area"},
			{ID: "act_2", Name: "New York Mission"},
			{ID: "act_3", Name: "Canada Toronto Mission - North America East Area"},
		},
	}
	u, buf, sleeps := newTestUpdater(api)

	summary := u.Run(context.Background(), true)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Changed)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 0, summary.Errors)
	assert.Empty(t, api.renames, "dry run must not invoke the rename call")
	assert.Equal(t, 0, *sleeps, "dry run must not sleep")

	require.Len(t, summary.Changes, 2)
	assert.Equal(t, Change{
		ID:       "act_1",
		Original: "Washington Yakima Mission - North America West Area",
		Updated:  "Washington Yakima Mission - United States West Area",
	}, summary.Changes[0])
	assert.Equal(t, "act_3", summary.Changes[1].ID)

	assert.Contains(t, buf.String(), "WOULD CHANGE: Washington Yakima Mission - North America West Area -> Washington Yakima Mission - United States West Area")
	assert.Contains(t, buf.String(), "NO CHANGE: New York Mission")
}

func TestRunLivePushesOncePerChangedAccount(t *testing.T) {
	api := &fakeAPI{
		accounts: []meta.AdAccount{
			{ID: "act_1", Name: "Washington Yakima Mission - North America West Area"},
			{ID: "act_2", Name: "New York Mission"},
			{ID: "act_3", Name: "Texas Houston Mission - North America Southwest Area"},
		},
	}
	u, _, sleeps := newTestUpdater(api)

	summary := u.Run(context.Background(), false)

	assert.Equal(t, 2, summary.Changed)
	assert.Equal(t, 0, summary.Errors)
	require.Len(t, api.renames, 2)
	assert.Equal(t, "act_1", api.renames[0].ID)
	assert.Equal(t, "act_3", api.renames[1].ID)
	assert.Equal(t, 2, *sleeps, "expected one pause per live mutation")
}

func TestRunLivePushFailureCountsErrorAndContinues(t *testing.T) {
	api := &fakeAPI{
		accounts: []meta.AdAccount{
			{ID: "act_1", Name: "Washington Yakima Mission - North America West Area"},
			{ID: "act_2", Name: "Texas Houston Mission - North America Southwest Area"},
			{ID: "act_3", Name: "Florida Tampa Mission - North America Southeast Area"},
		},
		renameErrs: map[string]error{
			"act_2": errors.New("rename returned status 403: permission denied"),
		},
	}
	u, buf, _ := newTestUpdater(api)

	summary := u.Run(context.Background(), false)

	assert.Equal(t, 2, summary.Changed, "earlier and later successes must survive one failure")
	assert.Equal(t, 1, summary.Errors)
	require.Len(t, api.renames, 2)
	assert.Equal(t, "act_1", api.renames[0].ID)
	assert.Equal(t, "act_3", api.renames[1].ID)

	// Failed pushes still appear in the change list.
	require.Len(t, summary.Changes, 3)
	assert.Contains(t, buf.String(), "Failed to update act_2")
}

func TestRunListingFailureDegradesToEmpty(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("adaccounts returned status 500: upstream error")}
	u, buf, _ := newTestUpdater(api)

	summary := u.Run(context.Background(), false)

	assert.Equal(t, Summary{}, summary)
	assert.Contains(t, buf.String(), "Error retrieving ad accounts")
	assert.Contains(t, buf.String(), "Found 0 active ad accounts")
}

func TestPushRename(t *testing.T) {
	api := &fakeAPI{renameErrs: map[string]error{"act_bad": errors.New("boom")}}
	u, _, _ := newTestUpdater(api)

	assert.True(t, u.PushRename(context.Background(), "act_ok", "New Name"))
	assert.False(t, u.PushRename(context.Background(), "act_bad", "New Name"))
}

func TestListAccountsFailureReturnsEmpty(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("network down")}
	u, _, _ := newTestUpdater(api)

	accounts := u.ListAccounts(context.Background())
	assert.Empty(t, accounts)
}

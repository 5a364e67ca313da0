package transfer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastprodman/aura/internal/client/preferences"
	"github.com/fastprodman/aura/internal/client/repository/repositorymock"
	"github.com/fastprodman/aura/internal/models"
)

func newViewModel(t *testing.T) (*ViewModel, *repositorymock.Repository) {
	t.Helper()

	repo := new(repositorymock.Repository)
	vm := New(t.Context(), repo, preferences.NewMemory("initialIdentifier"), WithResetDelay(time.Millisecond))

	require.Eventually(t, func() bool {
		return vm.State().Sender == "initialIdentifier"
	}, 2*time.Second, time.Millisecond)

	return vm, repo
}

func TestTransferViewModel_InitialState(t *testing.T) {
	t.Parallel()

	vm, _ := newViewModel(t)

	s := vm.State()
	assert.Equal(t, "initialIdentifier", s.Sender)
	assert.Empty(t, s.Recipient)
	assert.Empty(t, s.Amount)
	assert.False(t, s.TransferEnabled)
	assert.False(t, s.Loading)
	assert.Empty(t, s.ErrorMessage)
	assert.Nil(t, s.Granted)
}

func TestTransferViewModel_TransferEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		recipient string
		amount    string
		want      bool
	}{
		{name: "both_filled", recipient: "testRecipient", amount: "100.0", want: true},
		{name: "recipient_empty", recipient: "", amount: "100.0", want: false},
		{name: "amount_empty", recipient: "testRecipient", amount: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vm, _ := newViewModel(t)
			vm.SetRecipient(tt.recipient)
			vm.SetAmount(tt.amount)

			assert.Equal(t, tt.want, vm.State().TransferEnabled)
		})
	}
}

func TestTransferViewModel_Transfer(t *testing.T) {
	t.Parallel()

	accepted := true
	refused := false

	tests := []struct {
		name        string
		conn        models.ServerConnection[bool]
		wantLoading bool
		wantGranted *bool
		wantError   string
		wantEnabled bool
	}{
		{name: "loading", conn: models.Loading[bool](), wantLoading: true, wantEnabled: false},
		{name: "refused", conn: models.Success(false), wantGranted: &refused, wantEnabled: true},
		{name: "accepted", conn: models.Success(true), wantGranted: &accepted, wantEnabled: true},
		{name: "server_error", conn: models.Failure[bool](errors.New("Server error")), wantError: "Server error", wantEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vm, repo := newViewModel(t)
			repo.On("DoTransfer", mock.Anything, "initialIdentifier", "testRecipient", 200.0).Return(tt.conn)

			vm.SetRecipient("testRecipient")
			vm.SetAmount("200")
			vm.Transfer(t.Context())

			s := vm.State()
			assert.Equal(t, tt.wantLoading, s.Loading)
			assert.Equal(t, tt.wantGranted, s.Granted)
			assert.Equal(t, tt.wantError, s.ErrorMessage)
			assert.Equal(t, tt.wantEnabled, s.TransferEnabled)
			repo.AssertExpectations(t)
		})
	}
}

func TestTransferViewModel_InvalidAmountSkipsBackend(t *testing.T) {
	t.Parallel()

	for _, amount := range []string{"ten", "1.234", "-5", "0", "0.00", "1e17"} {
		t.Run(amount, func(t *testing.T) {
			t.Parallel()

			vm, repo := newViewModel(t)

			vm.SetRecipient("testRecipient")
			vm.SetAmount(amount)
			vm.Transfer(t.Context())

			s := vm.State()
			assert.Equal(t, "invalid amount", s.ErrorMessage)
			assert.False(t, s.Loading)
			assert.Nil(t, s.Granted)
			assert.True(t, s.TransferEnabled)
			repo.AssertNotCalled(t, "DoTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTransferViewModel_ResetKeepsForm(t *testing.T) {
	t.Parallel()

	vm, repo := newViewModel(t)
	repo.On("DoTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(models.Success(false))

	vm.SetRecipient("testRecipient")
	vm.SetAmount("12.5")
	vm.Transfer(t.Context())
	require.NotNil(t, vm.State().Granted)

	vm.Reset(t.Context())

	s := vm.State()
	assert.Nil(t, s.Granted)
	assert.Empty(t, s.ErrorMessage)
	assert.Equal(t, "testRecipient", s.Recipient)
	assert.Equal(t, "12.5", s.Amount)
	assert.True(t, s.TransferEnabled)
}

package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zkmesh/relay/gateway"
	"github.com/zkmesh/relay/gateway/mocks"
	"github.com/zkmesh/relay/shared"
)

func TestRoundRobinFailsOver(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	first := mocks.NewMockClient(ctrl)
	second := mocks.NewMockClient(ctrl)

	first.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(0.0, gateway.ErrUnavailable)
	second.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(1.5, nil)

	rr := gateway.NewRoundRobin(first, second)
	balance, err := rr.Balance(context.Background(), shared.AccountID{})
	require.NoError(t, err)
	require.Equal(t, 1.5, balance)
}

func TestRoundRobinSticksToHealthyGateway(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	first := mocks.NewMockClient(ctrl)
	second := mocks.NewMockClient(ctrl)

	first.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(0.0, gateway.ErrUnavailable)
	second.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(1.5, nil).Times(2)

	rr := gateway.NewRoundRobin(first, second)
	_, err := rr.Balance(context.Background(), shared.AccountID{})
	require.NoError(t, err)

	// The second gateway handled the previous call, so it is picked first now.
	_, err = rr.Balance(context.Background(), shared.AccountID{})
	require.NoError(t, err)
}

func TestRoundRobinDoesNotRetryInvalidRequests(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	first := mocks.NewMockClient(ctrl)
	second := mocks.NewMockClient(ctrl)

	first.EXPECT().ProofStatus(gomock.Any(), "bogus").Return(nil, gateway.ErrNotFound)

	rr := gateway.NewRoundRobin(first, second)
	_, err := rr.ProofStatus(context.Background(), "bogus")
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestRoundRobinGivesUpAfterFullCycle(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	first := mocks.NewMockClient(ctrl)
	second := mocks.NewMockClient(ctrl)

	first.EXPECT().Accounts(gomock.Any()).Return(nil, gateway.ErrUnavailable)
	second.EXPECT().Accounts(gomock.Any()).Return(nil, gateway.ErrUnavailable)

	rr := gateway.NewRoundRobin(first, second)
	_, err := rr.Accounts(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnavailable)
}

func TestRoundRobinDoesNotReplayBilledCalls(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	first := mocks.NewMockClient(ctrl)
	second := mocks.NewMockClient(ctrl)

	first.EXPECT().TopUp(gomock.Any(), gomock.Any(), 0.004).Return(nil, gateway.ErrUnavailable)

	rr := gateway.NewRoundRobin(first, second)
	_, err := rr.TopUp(context.Background(), shared.AccountID{}, 0.004)
	require.ErrorIs(t, err, gateway.ErrUnavailable)
}

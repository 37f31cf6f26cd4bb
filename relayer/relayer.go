package relayer

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	localhost "github.com/ibc-labs/loopback/modules/light-clients/09-localhost"
)

// Variables used for retries
var (
	RtyAttNum = uint(5)
	RtyAtt    = retry.Attempts(RtyAttNum)
	RtyDel    = retry.Delay(time.Millisecond * 400)
	RtyErr    = retry.LastErrorOnly(true)
)

// Relayer routes assembled IBC messages to their destination ledger. Messages
// whose first connection hop is the sentinel localhost connection never leave
// the source ledger: they are stamped with the sentinel proof and a zero proof
// height and handed straight back to the local endpoint. Everything else is
// submitted to the remote endpoint with retries.
type Relayer struct {
	log *zap.Logger

	local  Endpoint
	remote Endpoint
}

// NewRelayer returns a Relayer routing between the given endpoints.
func NewRelayer(log *zap.Logger, local, remote Endpoint) *Relayer {
	return &Relayer{
		log:    log,
		local:  local,
		remote: remote,
	}
}

// Relay partitions the messages by destination and delivers each batch. Local
// loopback messages are delivered first so that a mixed batch observes state
// written by its own loopback half.
func (r *Relayer) Relay(ctx context.Context, msgs []Message) error {
	var localMsgs, remoteMsgs []Message
	for _, msg := range msgs {
		if msg.IsLocalhost() {
			localMsgs = append(localMsgs, redirectLocal(msg))
		} else {
			remoteMsgs = append(remoteMsgs, msg)
		}
	}

	if len(localMsgs) > 0 {
		r.log.Debug("Delivering loopback messages locally",
			zap.String("chain_id", r.local.ChainID()),
			zap.Int("count", len(localMsgs)),
		)
		if err := r.local.SendMessages(ctx, localMsgs); err != nil {
			return err
		}
	}

	if len(remoteMsgs) > 0 {
		return r.sendWithRetry(ctx, remoteMsgs)
	}

	return nil
}

// redirectLocal rewrites a loopback message for local execution. The loopback
// client ignores proofs, so the sentinel proof and a zero height stand in for
// the queried values a cross-chain message would carry.
func redirectLocal(msg Message) Message {
	msg.Proof = localhost.SentinelProof
	msg.ProofHeight = clienttypes.ZeroHeight()
	return msg
}

func (r *Relayer) sendWithRetry(ctx context.Context, msgs []Message) error {
	return retry.Do(func() error {
		return r.remote.SendMessages(ctx, msgs)
	}, retry.Context(ctx), RtyAtt, RtyDel, RtyErr, retry.OnRetry(func(n uint, err error) {
		r.log.Info(
			"Failed to send messages",
			zap.String("chain_id", r.remote.ChainID()),
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", RtyAttNum),
			zap.Error(err),
		)
	}))
}

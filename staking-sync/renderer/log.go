package renderer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/datamodel"
	"puck-staking/staking-sync/snapshot"
)

const displayPlaces = 2

// LogRenderer prints snapshots and results the way the staking dashboard displays them.
type LogRenderer struct{}

var _ Renderer = LogRenderer{}

func (LogRenderer) PublishSnapshot(_ context.Context, s *datamodel.AccountSnapshot) error {
	for _, staked := range s.StakedBalances {
		log.WithField("token", staked.Token.DisplayName).
			WithField("amount", snapshot.FormatAmount(staked.Amount, displayPlaces)).
			WithField("share", snapshot.FormatAmount(staked.PercentageOfTotalStake, displayPlaces)+"%").
			Debug("staked balance")
	}

	log.WithField("account", s.Account).
		WithField("totalStaked", snapshot.FormatAmount(s.TotalStaked, displayPlaces)).
		WithField("totalRewards", snapshot.FormatAmount(s.TotalRewardsEarned, displayPlaces)).
		WithField("availableRewards", snapshot.FormatAmount(s.AvailableRewards, displayPlaces)).
		WithField("stakedTokens", len(s.StakedBalances)).
		Info("account snapshot published")

	return nil
}

func (LogRenderer) PublishActionResult(_ context.Context, result *datamodel.ActionResult) error {
	entry := log.WithField("kind", result.Action.Kind).
		WithField("outcome", result.Outcome).
		WithField("amount", snapshot.FormatAmount(result.Action.Amount, displayPlaces))

	if result.TxHash != "" {
		entry = entry.WithField("txHash", result.TxHash)
	}

	if result.Reason != "" {
		entry = entry.WithField("reason", result.Reason)
	}

	if result.Outcome == datamodel.OutcomeSucceeded {
		entry.Info("staking action completed")
	} else {
		entry.Warn("staking action did not succeed")
	}

	return nil
}

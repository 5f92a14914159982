package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"
	"github.com/remeh/sizedwaitgroup"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/reporting"
	"puck-staking/goutils/settings"
	"puck-staking/staking-sync/catalogue"
	"puck-staking/staking-sync/ledger"
	"puck-staking/staking-sync/renderer"
	"puck-staking/staking-sync/snapshot"
)

type Service interface {
	Refresh(ctx context.Context) (*datamodel.AccountSnapshot, error)
	Submit(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error)
	Stake(ctx context.Context, tokenID common.Address, amount decimal.Decimal) (*datamodel.ActionResult, error)
	Unstake(ctx context.Context, tokenID common.Address, amount decimal.Decimal) (*datamodel.ActionResult, error)
	Claim(ctx context.Context) (*datamodel.ActionResult, error)
	LastSnapshot() *datamodel.AccountSnapshot
	Status() Status
	Healthy() error
}

// Controller owns the refresh cycles and the action flows of one account.
type Controller struct {
	gateway     ledger.Gateway
	catalogue   *catalogue.Catalogue
	renderer    renderer.Renderer
	reporter    reporting.Service
	validate    *validator.Validate
	concurrency int
	account     common.Address
	now         func() time.Time

	busy atomic.Bool

	// in-flight issue reports
	reports sync.WaitGroup

	// serializes the staleness check with the render call so an older cycle never renders after a newer one
	publishMu sync.Mutex

	mu          sync.Mutex
	nextCycle   uint64
	floor       uint64
	published   uint64
	inflight    int
	lastRefresh RefreshState
	actionState ActionState
	last        *datamodel.AccountSnapshot
}

var _ Service = (*Controller)(nil)

func NewController(
	settingsObj *settings.SettingsObj,
	gateway ledger.Gateway,
	c *catalogue.Catalogue,
	r renderer.Renderer,
	reporter reporting.Service,
) *Controller {
	concurrency := settingsObj.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Controller{
		gateway:     gateway,
		catalogue:   c,
		renderer:    r,
		reporter:    reporter,
		validate:    validator.New(),
		concurrency: concurrency,
		account:     gateway.Account(),
		now:         time.Now,
		lastRefresh: RefreshIdle,
		actionState: ActionIdle,
	}
}

// Run refreshes immediately and then every interval until ctx is done.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		_, err := c.Refresh(ctx)
		if err != nil && !errors.Is(err, ErrSuperseded) {
			log.WithError(err).Warn("periodic refresh failed")
		}

		select {
		case <-ctx.Done():
			log.Info("stopping periodic refresh")

			return
		case <-ticker.C:
		}
	}
}

// Refresh reads every catalogue token and the rewards of the account, builds a snapshot and publishes it.
// On failure nothing is published and the last published snapshot stays current.
func (c *Controller) Refresh(ctx context.Context) (*datamodel.AccountSnapshot, error) {
	cycle := c.beginCycle()
	l := log.WithField("cycle", cycle).WithField("account", c.account.Hex())

	l.Debug("refresh cycle started")

	tokens := c.catalogue.Tokens()

	reads, rewards, err := c.readAll(ctx, tokens)
	if err != nil {
		c.endCycle(RefreshFailed)

		l.WithError(err).Error("refresh cycle failed, keeping last published snapshot")
		c.report(reporting.RefreshFailedIssue, map[string]interface{}{
			"cycle": cycle,
			"error": err.Error(),
		})

		return nil, err
	}

	built := snapshot.Build(tokens, reads, rewards, c.account.Hex())

	renderErr, err := c.publish(ctx, cycle, &built)
	if err != nil {
		c.endCycle(RefreshIdle)

		l.Debug("refresh cycle superseded, discarding snapshot")

		return nil, err
	}

	if renderErr != nil {
		l.WithError(renderErr).Error("failed to render snapshot")
		c.report(reporting.PublishFailedIssue, map[string]interface{}{
			"cycle": cycle,
			"error": renderErr.Error(),
		})
	}

	c.endCycle(RefreshReady)

	l.WithField("totalStaked", built.TotalStaked.String()).Info("snapshot published")

	return &built, nil
}

func (c *Controller) readAll(ctx context.Context, tokens []datamodel.TokenDescriptor) ([]datamodel.RawTokenRead, datamodel.Rewards, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reads := make([]datamodel.RawTokenRead, len(tokens))
	rewards := datamodel.Rewards{}

	var once sync.Once
	var firstErr error

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	swg := sizedwaitgroup.New(c.concurrency)

	run := func(read func() error) {
		swg.Add()

		go func() {
			defer swg.Done()

			if ctx.Err() != nil {
				fail(ctx.Err())

				return
			}

			err := read()
			if err != nil {
				fail(err)
			}
		}()
	}

	for i := range tokens {
		i := i
		reads[i].TokenID = tokens[i].ID

		run(func() error {
			balance, err := c.gateway.ReadBalance(ctx, tokens[i].ID, c.account)
			reads[i].RawBalance = balance

			return wrapRead(err, "balance", tokens[i].ID)
		})

		run(func() error {
			staked, err := c.gateway.ReadStakedBalance(ctx, tokens[i].ID, c.account)
			reads[i].RawStakedBalance = staked

			return wrapRead(err, "staked balance", tokens[i].ID)
		})
	}

	run(func() error {
		total, err := c.gateway.ReadTotalRewards(ctx, c.account)
		rewards.Total = total

		return err
	})

	run(func() error {
		available, err := c.gateway.ReadAvailableRewards(ctx, c.account)
		rewards.Available = available

		return err
	})

	swg.Wait()

	if firstErr != nil {
		return nil, datamodel.Rewards{}, firstErr
	}

	return reads, rewards, nil
}

func wrapRead(err error, what string, tokenID common.Address) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("failed to read %s of token %s: %w", what, tokenID.Hex(), err)
}

// publish hands s to the renderer unless a newer cycle or a confirmed write superseded it.
// The render error is returned separately, the snapshot counts as published either way.
func (c *Controller) publish(ctx context.Context, cycle uint64, s *datamodel.AccountSnapshot) (renderErr, err error) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	if cycle < c.floor || cycle <= c.published {
		c.mu.Unlock()

		return nil, ErrSuperseded
	}

	c.published = cycle
	c.last = s
	c.mu.Unlock()

	return c.renderer.PublishSnapshot(ctx, s), nil
}

// report sends an issue without waiting for the webhook.
func (c *Controller) report(issueType reporting.IssueType, extra map[string]interface{}) {
	c.reports.Add(1)

	go func() {
		defer c.reports.Done()

		c.reporter.Report(issueType, c.account.Hex(), extra)
	}()
}

// FlushReports waits for issue reports still in flight.
func (c *Controller) FlushReports() {
	c.reports.Wait()
}

func (c *Controller) beginCycle() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextCycle++
	c.inflight++

	return c.nextCycle
}

func (c *Controller) endCycle(state RefreshState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight--
	c.lastRefresh = state
}

// supersedeCycles makes every cycle started so far unpublishable.
func (c *Controller) supersedeCycles() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.floor = c.nextCycle + 1
}

func (c *Controller) setActionState(state ActionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.actionState = state
}

func (c *Controller) Stake(ctx context.Context, tokenID common.Address, amount decimal.Decimal) (*datamodel.ActionResult, error) {
	return c.Submit(ctx, datamodel.PendingAction{Kind: datamodel.ActionStake, TokenID: tokenID, Amount: amount})
}

func (c *Controller) Unstake(ctx context.Context, tokenID common.Address, amount decimal.Decimal) (*datamodel.ActionResult, error) {
	return c.Submit(ctx, datamodel.PendingAction{Kind: datamodel.ActionUnstake, TokenID: tokenID, Amount: amount})
}

func (c *Controller) Claim(ctx context.Context) (*datamodel.ActionResult, error) {
	return c.Submit(ctx, datamodel.PendingAction{Kind: datamodel.ActionClaim})
}

// Submit validates and executes one action, then refreshes and emits the terminal result.
// The returned result is never nil, the error is nil only for a succeeded action.
func (c *Controller) Submit(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error) {
	l := log.WithField("kind", action.Kind).
		WithField("token", action.TokenID.Hex()).
		WithField("amount", action.Amount.String())

	result := &datamodel.ActionResult{Action: action}

	token, err := c.validateAction(action)
	if err != nil {
		l.WithError(err).Warn("staking action rejected by validation")

		return c.resolve(ctx, result, err), err
	}

	if action.Kind != datamodel.ActionClaim {
		result.Action.TokenID = token.ID
		l = l.WithField("token", token.ID.Hex())
	}

	if !c.busy.CompareAndSwap(false, true) {
		l.Warn("staking action rejected, another action is in progress")

		return c.resolve(ctx, result, ErrBusy), ErrBusy
	}
	defer c.busy.Store(false)

	err = c.execute(ctx, action, token, result)
	if err != nil {
		l.WithError(err).Error("staking action did not succeed")
	} else {
		l.WithField("tx", result.TxHash).Info("staking action confirmed")
	}

	_, refreshErr := c.Refresh(ctx)
	if refreshErr != nil && !errors.Is(refreshErr, ErrSuperseded) {
		l.WithError(refreshErr).Warn("refresh after staking action failed")
	}

	c.resolve(ctx, result, err)
	c.setActionState(ActionIdle)

	return result, err
}

func (c *Controller) validateAction(action datamodel.PendingAction) (datamodel.TokenDescriptor, error) {
	err := c.validate.Struct(action)
	if err != nil {
		return datamodel.TokenDescriptor{}, invalid("kind", fmt.Sprintf("unsupported action kind %q", action.Kind))
	}

	last := c.LastSnapshot()

	if action.Kind == datamodel.ActionClaim {
		if last == nil {
			return datamodel.TokenDescriptor{}, invalid("rewards", "no snapshot available yet")
		}

		if !last.AvailableRewards.IsPositive() {
			return datamodel.TokenDescriptor{}, invalid("rewards", "no rewards available to claim")
		}

		return datamodel.TokenDescriptor{}, nil
	}

	token, err := c.lookupToken(action)
	if err != nil {
		return datamodel.TokenDescriptor{}, invalid("token", err.Error())
	}

	if !action.Amount.IsPositive() {
		return token, invalid("amount", "must be greater than zero")
	}

	if snapshot.ToBaseUnits(action.Amount, token.Scale()).Sign() == 0 {
		return token, invalid("amount", fmt.Sprintf("below the precision of %d decimals", token.Scale()))
	}

	if last == nil {
		return token, invalid("amount", "no snapshot available yet")
	}

	switch action.Kind {
	case datamodel.ActionStake:
		balance, _ := last.Balance(token.ID)
		if action.Amount.GreaterThan(balance) {
			return token, invalid("amount", "exceeds wallet balance of "+balance.String())
		}
	case datamodel.ActionUnstake:
		staked, _ := last.Staked(token.ID)
		if action.Amount.GreaterThan(staked.Amount) {
			return token, invalid("amount", "exceeds staked balance of "+staked.Amount.String())
		}
	}

	return token, nil
}

func (c *Controller) lookupToken(action datamodel.PendingAction) (datamodel.TokenDescriptor, error) {
	if action.TokenID == (common.Address{}) && action.Token != "" {
		return c.catalogue.LookupName(action.Token)
	}

	return c.catalogue.Lookup(action.TokenID)
}

func (c *Controller) execute(
	ctx context.Context,
	action datamodel.PendingAction,
	token datamodel.TokenDescriptor,
	result *datamodel.ActionResult,
) (err error) {
	c.setActionState(ActionSubmitting)

	defer func() {
		if err != nil {
			c.setActionState(ActionFailed)
		} else {
			c.setActionState(ActionSucceeded)
		}
	}()

	var tx *types.Transaction

	switch action.Kind {
	case datamodel.ActionStake:
		amount := snapshot.ToBaseUnits(action.Amount, token.Scale())

		err = c.ensureAllowance(ctx, token, amount, result)
		if err != nil {
			return err
		}

		tx, err = c.gateway.Stake(ctx, token.ID, amount)
	case datamodel.ActionUnstake:
		tx, err = c.gateway.Unstake(ctx, token.ID, snapshot.ToBaseUnits(action.Amount, token.Scale()))
	case datamodel.ActionClaim:
		tx, err = c.gateway.Claim(ctx)
	}

	if err != nil {
		return err
	}

	result.TxHash = tx.Hash().Hex()

	return c.confirm(ctx, tx)
}

func (c *Controller) ensureAllowance(ctx context.Context, token datamodel.TokenDescriptor, amount *big.Int, result *datamodel.ActionResult) error {
	spender := c.gateway.Spender()

	allowance, err := c.gateway.ReadAllowance(ctx, c.account, spender, token.ID)
	if err != nil {
		return err
	}

	if allowance.Cmp(amount) >= 0 {
		log.WithField("token", token.ID.Hex()).Debug("allowance sufficient, skipping approval")

		return nil
	}

	tx, err := c.gateway.Approve(ctx, token.ID, spender, amount)
	if err != nil {
		return err
	}

	result.ApproveTxHash = tx.Hash().Hex()

	err = c.confirm(ctx, tx)
	if err != nil {
		return err
	}

	c.setActionState(ActionSubmitting)

	return nil
}

// confirm waits for tx. A confirmed or timed out write supersedes every cycle started before it.
func (c *Controller) confirm(ctx context.Context, tx *types.Transaction) error {
	c.setActionState(ActionConfirming)

	_, err := c.gateway.WaitConfirmed(ctx, tx)
	if err == nil || errors.Is(err, ledger.ErrTransactionTimedOut) {
		c.supersedeCycles()
	}

	return err
}

// resolve maps err to the terminal outcome and emits the result.
func (c *Controller) resolve(ctx context.Context, result *datamodel.ActionResult, err error) *datamodel.ActionResult {
	var validationErr *ValidationError

	result.Timestamp = c.now().Unix()

	switch {
	case err == nil:
		result.Outcome = datamodel.OutcomeSucceeded
	case errors.Is(err, ErrBusy):
		result.Outcome = datamodel.OutcomeBusy
	case errors.As(err, &validationErr):
		result.Outcome = datamodel.OutcomeInvalid
	case errors.Is(err, ledger.ErrTransactionRejected):
		result.Outcome = datamodel.OutcomeRejected
	case errors.Is(err, ledger.ErrTransactionTimedOut):
		result.Outcome = datamodel.OutcomeTimedOut
	default:
		result.Outcome = datamodel.OutcomeFailed
	}

	if err != nil {
		result.Reason = failureReason(err)
	}

	extra := map[string]interface{}{
		"kind":   result.Action.Kind,
		"token":  result.Action.TokenID.Hex(),
		"amount": result.Action.Amount.String(),
		"tx":     result.TxHash,
		"reason": result.Reason,
	}

	switch result.Outcome {
	case datamodel.OutcomeFailed:
		c.report(reporting.ActionFailedIssue, extra)
	case datamodel.OutcomeTimedOut:
		c.report(reporting.ActionTimedOutIssue, extra)
	}

	publishErr := c.renderer.PublishActionResult(ctx, result)
	if publishErr != nil {
		log.WithError(publishErr).Error("failed to render action result")
		c.report(reporting.PublishFailedIssue, extra)
	}

	return result
}

func failureReason(err error) string {
	var revertErr *ledger.RevertError
	if errors.As(err, &revertErr) && revertErr.Reason != "" {
		return revertErr.Reason
	}

	return err.Error()
}

// LastSnapshot returns the last published snapshot, nil before the first one. It must not be modified.
func (c *Controller) LastSnapshot() *datamodel.AccountSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	refresh := RefreshIdle
	if c.inflight > 0 {
		refresh = RefreshLoading
	}

	return Status{
		Refresh:        refresh,
		LastRefresh:    c.lastRefresh,
		Action:         c.actionState,
		PublishedCycle: c.published,
	}
}

// Healthy fails until the first snapshot has been published.
func (c *Controller) Healthy() error {
	if c.LastSnapshot() == nil {
		return errors.New("no snapshot published yet")
	}

	return nil
}

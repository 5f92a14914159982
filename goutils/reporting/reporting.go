package reporting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/httpclient"
	"puck-staking/goutils/settings"
)

type IssueType string

const (
	RefreshFailedIssue  IssueType = "STAKING_REFRESH_FAILED"   // a refresh cycle could not read the contract
	ActionFailedIssue   IssueType = "STAKING_ACTION_FAILED"    // stake, unstake or claim reverted or errored
	ActionTimedOutIssue IssueType = "STAKING_ACTION_TIMED_OUT" // confirmation did not arrive in time
	PublishFailedIssue  IssueType = "STAKING_PUBLISH_FAILED"   // a renderer rejected a snapshot or result
)

type Service interface {
	Report(issueType IssueType, account string, extra map[string]interface{})
}

type IssueReporter struct {
	httpClient       *retryablehttp.Client
	slackRateLimiter *rate.Limiter
	settingsObj      *settings.SettingsObj
}

var _ Service = (*IssueReporter)(nil)

func InitIssueReporter(settingsObj *settings.SettingsObj) *IssueReporter {
	client := &IssueReporter{
		httpClient:       httpclient.GetDefaultHTTPClient(settingsObj),
		slackRateLimiter: rate.NewLimiter(1, 1),
		settingsObj:      settingsObj,
	}

	return client
}

type slackMessage struct {
	Text string `json:"text"`
}

func (i *IssueReporter) Report(issueType IssueType, account string, extra map[string]interface{}) {
	extraData, err := json.Marshal(extra)
	if err != nil {
		log.WithError(err).Error("failed to marshal extra data")
	}

	issue := &datamodel.Issue{
		InstanceID:      i.settingsObj.InstanceId,
		IssueType:       string(issueType),
		Account:         account,
		TimeOfReporting: strconv.FormatInt(time.Now().Unix(), 10),
		Extra:           string(extraData),
	}

	log.WithField("issue", issue).Debug("reporting issue")

	issueBytes, err := json.Marshal(issue)
	if err != nil {
		log.WithError(err).Error("failed to json marshal issue")

		return
	}

	msg, err := json.Marshal(&slackMessage{Text: fmt.Sprintf("[%s] %s", issue.IssueType, string(issueBytes))})
	if err != nil {
		log.WithError(err).Error("failed to json marshal slack message")

		return
	}

	i.ReportOnSlack(msg)
}

func (i *IssueReporter) ReportOnSlack(issue []byte) {
	if i.settingsObj.Reporting.SlackWebhookURL == "" {
		return
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, i.settingsObj.Reporting.SlackWebhookURL, bytes.NewBuffer(issue))
	if err != nil {
		log.WithError(err).Error("failed to create request to slack webhook url")

		return
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("accept", "application/json")

	log.Debugf("sending issue to slack")

	err = i.slackRateLimiter.Wait(context.Background())
	if err != nil {
		log.WithError(err).Error("failed to wait for slack rate limiter")

		return
	}

	res, err := i.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("failed to send request to slack webhook")

		return
	}

	defer res.Body.Close()

	resp, err := io.ReadAll(res.Body)
	if err != nil {
		log.WithError(err).Error("failed to read response body from slack webhook")
	}

	if res.StatusCode == http.StatusOK {
		log.WithField("resp", string(resp)).Debug("status ok response from slack webhook")

		return
	}

	log.WithField("resp", string(resp)).WithField("status", res.StatusCode).Info("response from slack webhook")
}

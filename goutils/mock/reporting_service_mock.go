package mock

import "puck-staking/goutils/reporting"

type ReportingServiceMock struct {
	ReportMock func(issueType reporting.IssueType, account string, extra map[string]interface{})
}

func (m ReportingServiceMock) Report(issueType reporting.IssueType, account string, extra map[string]interface{}) {
	if m.ReportMock != nil {
		m.ReportMock(issueType, account, extra)
	}
}

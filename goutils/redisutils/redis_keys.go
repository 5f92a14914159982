package redisutils

const (
	REDIS_KEY_ACCOUNT_SNAPSHOT       string = "stakingSync:account:%s:snapshot"
	REDIS_KEY_ACCOUNT_ACTION_RESULTS string = "stakingSync:account:%s:actionResults"
)

// MaxStoredActionResults caps the action result history kept per account.
const MaxStoredActionResults int64 = 100

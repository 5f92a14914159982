package settings

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/swagftw/gi"
)

type (
	RateLimiter struct {
		Burst          int `json:"burst"`
		RequestsPerSec int `json:"req_per_sec"`
	}

	Signer struct {
		AccountAddress string `json:"accountAddress" validate:"required,eth_addr"`
		PrivateKey     string `json:"privateKey"`
		GasLimit       uint64 `json:"gasLimit"`
	}

	Rabbitmq struct {
		User     string `json:"user"`
		Password string `json:"password"`
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Setup    struct {
			Core struct {
				Exchange string `json:"exchange"`
				DLX      string `json:"dlx"`
			} `json:"core"`
			Queues struct {
				StakingActions struct {
					QueueName  string `json:"queue_name"`
					RoutingKey string `json:"routing_key"`
				} `json:"staking_actions"`
			} `json:"queues"`
			Events struct {
				Exchange               string `json:"exchange"`
				SnapshotRoutingKey     string `json:"snapshot_routing_key"`
				ActionResultRoutingKey string `json:"action_result_routing_key"`
			} `json:"events"`
		} `json:"setup"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Db       int    `json:"db"`
		Password string `json:"password"`
		PoolSize int    `json:"pool_size"`
	}

	HTTPClient struct {
		MaxIdleConns        int `json:"max_idle_conns"`
		MaxConnsPerHost     int `json:"max_conns_per_host"`
		MaxIdleConnsPerHost int `json:"max_idle_conns_per_host"`
		IdleConnTimeout     int `json:"idle_conn_timeout"`
		ConnectionTimeout   int `json:"connection_timeout"`
	}

	Catalogue struct {
		Path            string `json:"path" validate:"required"`
		MetadataBaseURL string `json:"metadata_base_url"`
	}

	Reporting struct {
		SlackWebhookURL string `json:"slack_webhook_url"`
	}

	Healthcheck struct {
		Port          int    `json:"port"`
		Endpoint      string `json:"endpoint"`
		RecentActions int64  `json:"recent_actions"`
	}
)

type SettingsObj struct {
	InstanceId              string       `json:"instance_id" validate:"required"`
	AnchorChainRPCURL       string       `json:"anchor_chain_rpc_url" validate:"required"`
	StakingContractAddress  string       `json:"staking_contract_address" validate:"required,eth_addr"`
	LocalCachePath          string       `json:"local_cache_path" validate:"required"`
	Concurrency             int          `json:"concurrency" validate:"required"`
	RunIntervalSecs         int          `json:"run_interval_secs"`
	ConfirmationTimeoutSecs int          `json:"confirmation_timeout_secs"`
	RetryDelayMillis        int          `json:"retry_delay_millis"`
	HttpClient              *HTTPClient  `json:"http_client" validate:"required"`
	RPCRateLimiter          *RateLimiter `json:"rpc_rate_limit,omitempty"`
	Catalogue               *Catalogue   `json:"catalogue" validate:"required"`
	Rabbitmq                *Rabbitmq    `json:"rabbitmq" validate:"required"`
	Redis                   *Redis       `json:"redis" validate:"required"`
	Signer                  *Signer      `json:"signer" validate:"required"`
	Reporting               *Reporting   `json:"reporting" validate:"required"`
	Healthcheck             *Healthcheck `json:"healthcheck" validate:"required"`
}

// ParseSettings parses the settings.json file and returns a SettingsObj
func ParseSettings() *SettingsObj {
	log.Debug("parsing settings")

	dir := strings.TrimSuffix(os.Getenv("CONFIG_PATH"), "/")
	settingsFilePath := dir + "/settings.json"

	log.Info("reading settings:", settingsFilePath)

	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		log.Error("cannot read the file:", err)
		panic(err)
	}

	settingsObj, err := parse(data)
	if err != nil {
		log.WithError(err).Fatal("invalid settings object")
	}

	log.WithField("instance_id", settingsObj.InstanceId).
		WithField("staking_contract", settingsObj.StakingContractAddress).
		Info("settings parsed")

	err = gi.Inject(settingsObj)
	if err != nil {
		log.Fatal("cannot inject the settings object", err)
	}

	return settingsObj
}

func parse(data []byte) (*SettingsObj, error) {
	settingsObj := new(SettingsObj)

	err := json.Unmarshal(data, settingsObj)
	if err != nil {
		log.Error("cannot unmarshal the settings json ", err)

		return nil, err
	}

	SetDefaults(settingsObj)

	err = validator.New().Struct(settingsObj)
	if err != nil {
		return nil, err
	}

	return settingsObj, nil
}

// SetDefaults sets the default values for the settings object
// add default values in this function if required
func SetDefaults(settingsObj *SettingsObj) {
	if settingsObj.Reporting != nil && settingsObj.Reporting.SlackWebhookURL == "" {
		log.Warning("slack webhook url is not set, errors will not be reported to slack")
	}

	settingsObj.LocalCachePath = strings.TrimSuffix(settingsObj.LocalCachePath, "/")

	// for local testing
	if val, err := strconv.ParseBool(os.Getenv("LOCAL_TESTING")); err == nil && val {
		if settingsObj.Redis != nil {
			settingsObj.Redis.Host = "localhost"
		}

		if settingsObj.Rabbitmq != nil {
			settingsObj.Rabbitmq.Host = "localhost"
		}

		settingsObj.AnchorChainRPCURL = "http://localhost:8545"
	}

	privKey := os.Getenv("PRIVATE_KEY")
	if privKey != "" && settingsObj.Signer != nil {
		settingsObj.Signer.PrivateKey = privKey
	}

	if settingsObj.Signer != nil && settingsObj.Signer.GasLimit == 0 {
		settingsObj.Signer.GasLimit = 300000
	}

	if settingsObj.RunIntervalSecs == 0 {
		settingsObj.RunIntervalSecs = 30
	}

	if settingsObj.ConfirmationTimeoutSecs == 0 {
		settingsObj.ConfirmationTimeoutSecs = 120
	}

	if settingsObj.RetryDelayMillis == 0 {
		settingsObj.RetryDelayMillis = 500
	}

	if settingsObj.Healthcheck != nil {
		if settingsObj.Healthcheck.Endpoint == "" {
			settingsObj.Healthcheck.Endpoint = "/health"
		}

		if settingsObj.Healthcheck.Port == 0 {
			settingsObj.Healthcheck.Port = 9000
		}
	}
}

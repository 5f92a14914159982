package caching

import (
	"context"
	"errors"

	"puck-staking/goutils/datamodel"
)

// DbCache is responsible for data caching in db stores like redis, memcache etc.
// for disk caching use DiskCache interface
type DbCache interface {
	StoreSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error
	GetSnapshot(ctx context.Context, account string) (*datamodel.AccountSnapshot, error)
	AddActionResult(ctx context.Context, account string, result *datamodel.ActionResult) error
	GetActionResults(ctx context.Context, account string, limit int64) ([]*datamodel.ActionResult, error)
}

// DiskCache is responsible for data caching in local disk
type DiskCache interface {
	Read(filepath string) ([]byte, error)
	Write(filepath string, data []byte) error
}

var ErrNotFound = errors.New("not found in cache")

package renderer

import (
	"context"
	"encoding/json"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"puck-staking/caching"
	"puck-staking/goutils/datamodel"
)

const (
	snapshotFileName     = "snapshot.json"
	actionResultFileName = "last_action.json"
)

// DiskRenderer writes the latest snapshot and action result of the account under the local cache path.
type DiskRenderer struct {
	disk caching.DiskCache
	dir  string
}

var _ Renderer = (*DiskRenderer)(nil)

func NewDiskRenderer(disk caching.DiskCache, localCachePath, account string) *DiskRenderer {
	return &DiskRenderer{
		disk: disk,
		dir:  filepath.Join(localCachePath, account),
	}
}

func (d *DiskRenderer) PublishSnapshot(_ context.Context, snapshot *datamodel.AccountSnapshot) error {
	return d.write(snapshotFileName, snapshot)
}

func (d *DiskRenderer) PublishActionResult(_ context.Context, result *datamodel.ActionResult) error {
	return d.write(actionResultFileName, result)
}

func (d *DiskRenderer) write(name string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.WithError(err).Error("failed to marshal payload for disk")

		return err
	}

	return d.disk.Write(filepath.Join(d.dir, name), data)
}

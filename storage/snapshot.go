package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

var ErrSnapshotNotFound = errors.New("round snapshot not found")

// ETCDSnapshot keeps round snapshots in etcd so a round can be
// re-rendered after reconnection or inspected after it ends.
// Entries live under a lease and expire with it.
type ETCDSnapshot struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
	leaseTTL        time.Duration
	leaseID         clientv3.LeaseID
	stopChan        chan struct{}
}

// NewETCDSnapshot returns a new instance of the snapshot store
func NewETCDSnapshot(conf config.ETCDBindingConfig) *ETCDSnapshot {
	b := &ETCDSnapshot{
		stopChan: make(chan struct{}),
	}
	b.etcdDialTimeout = conf.DialTimeout
	b.etcdEndpoints = conf.Endpoints
	b.etcdPrefix = conf.Prefix
	b.leaseTTL = conf.LeaseTTL
	return b
}

func getRoundKey(roundID string) string {
	return fmt.Sprintf("round/%s", roundID)
}

// Save puts the round snapshot into etcd
func (b *ETCDSnapshot) Save(roundID string, snap *mahjong.RoundSnapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = b.cli.Put(context.Background(), getRoundKey(roundID), string(value), clientv3.WithLease(b.leaseID))
	return err
}

func (b *ETCDSnapshot) Remove(roundID string) error {
	_, err := b.cli.Delete(context.Background(), getRoundKey(roundID))
	return err
}

// Load gets the stored snapshot of a round
func (b *ETCDSnapshot) Load(roundID string) (*mahjong.RoundSnapshot, error) {
	etcdRes, err := b.cli.Get(context.Background(), getRoundKey(roundID))
	if err != nil {
		return nil, err
	}
	if len(etcdRes.Kvs) == 0 {
		return nil, ErrSnapshotNotFound
	}

	snap := &mahjong.RoundSnapshot{}
	err = json.Unmarshal(etcdRes.Kvs[0].Value, snap)
	return snap, err
}

func (b *ETCDSnapshot) watchLeaseChan(c <-chan *clientv3.LeaseKeepAliveResponse) {
	for {
		select {
		case <-b.stopChan:
			return
		case kaRes := <-c:
			if kaRes == nil {
				logger.Log.Warn("[snapshot storage] sd: error renewing etcd lease, rebootstrapping")
				for {
					err := b.bootstrapLease()
					if err != nil {
						logger.Log.Warn("[snapshot storage] sd: error rebootstrapping lease, will retry in 5 seconds")
						time.Sleep(5 * time.Second)
						continue
					} else {
						return
					}
				}
			}
		}
	}
}

func (b *ETCDSnapshot) bootstrapLease() error {
	// grab lease
	l, err := b.cli.Grant(context.TODO(), int64(b.leaseTTL.Seconds()))
	if err != nil {
		return err
	}
	b.leaseID = l.ID
	logger.Log.Debugf("[snapshot storage] sd: got leaseID: %x", l.ID)
	// this will keep alive forever, when channel c is closed
	// it means we probably have to rebootstrap the lease
	c, err := b.cli.KeepAlive(context.TODO(), b.leaseID)
	if err != nil {
		return err
	}
	// need to receive here as per etcd docs
	<-c
	go b.watchLeaseChan(c)
	return nil
}

// Init starts the snapshot storage module
func (b *ETCDSnapshot) Init() error {
	var cli *clientv3.Client
	var err error
	if b.cli == nil {
		cli, err = clientv3.New(clientv3.Config{
			Endpoints:   b.etcdEndpoints,
			DialTimeout: b.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		b.cli = cli
	}
	// namespaced etcd :)
	b.cli.KV = namespace.NewKV(b.cli.KV, b.etcdPrefix)
	err = b.bootstrapLease()
	if err != nil {
		return err
	}

	return nil
}

// Shutdown executes on shutdown and will clean etcd
func (b *ETCDSnapshot) Shutdown() error {
	close(b.stopChan)
	return b.cli.Close()
}

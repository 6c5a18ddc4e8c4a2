// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// Miner - control surface the reader drives when the configuration changes
type Miner interface {
	SetWorkers(count uint32)
	IsWorking() bool
}

// ConfigReader - reload the configuration while the daemon is running
type ConfigReader interface {
	Initialise(string)
	OptimalWorkerCount() uint32
	Refresh() error
	GetConfig() (*Configuration, string, error)
	SetLog(*logger.L) error
	SetMiner(Miner)
	SetWatcher(FileWatcher)
	Start()
	FirstTimeRun()
}

const (
	oneMinute          = time.Duration(1) * time.Minute
	minWorkerCount     = 1
	ReaderLoggerPrefix = "config-reader"
)

var (
	totalCPUCount = uint32(runtime.NumCPU())
)

type ConfigReaderData struct {
	fileName             string
	refreshByMinute      time.Duration
	log                  *logger.L
	currentConfiguration *Configuration
	initialized          bool
	workerCount          uint32
	miner                Miner
	watcher              FileWatcher
}

func newConfigReader() ConfigReader {
	return &ConfigReaderData{
		log:                  nil,
		currentConfiguration: nil,
		workerCount:          minWorkerCount,
		initialized:          false,
		refreshByMinute:      oneMinute,
	}
}

// configuration needs read first to know logger file location
func (c *ConfigReaderData) Initialise(fileName string) {
	c.fileName = fileName
}

func (c *ConfigReaderData) SetMiner(miner Miner) {
	c.miner = miner
}

func (c *ConfigReaderData) SetWatcher(watcher FileWatcher) {
	c.watcher = watcher
}

func (c *ConfigReaderData) FirstTimeRun() {
	err := c.Refresh()
	if nil != err {
		return
	}
	c.notify()
}

func (c *ConfigReaderData) Start() {
	go func() {
		for {
			select {
			case <-c.watcher.ChangeChannel():
				c.log.Debugf("receive file change event, wait for 1 minute to adapt")
				<-time.After(c.refreshByMinute)
				err := c.Refresh()
				if nil != err {
					c.log.Errorf("failed to read configuration from: %s error: %s",
						c.fileName, err)
				}
				c.notify()
			case <-c.watcher.RemoveChannel():
				c.log.Warn("config file removed")
			}
		}
	}()
}

func (c *ConfigReaderData) Refresh() error {
	configuration, err := c.parse()
	if nil != err {
		return err
	}
	c.update(configuration)
	return nil
}

func (c *ConfigReaderData) notify() {
	c.miner.SetWorkers(c.workerCount)
}

func (c *ConfigReaderData) parse() (*Configuration, error) {
	configuration, err := getConfiguration(c.fileName)
	if nil != err {
		return nil, err
	}
	return configuration, nil
}

func (c *ConfigReaderData) GetConfig() (*Configuration, string, error) {
	if nil == c.currentConfiguration {
		return nil, "", fmt.Errorf("configuration is empty")
	}
	return c.currentConfiguration, c.fileName, nil
}

func (c *ConfigReaderData) SetLog(log *logger.L) error {
	if nil == log {
		return fmt.Errorf("logger %v is nil", log)
	}
	c.log = log
	c.initialized = true
	return nil
}

func (c *ConfigReaderData) update(newConfiguration *Configuration) {
	c.currentConfiguration = newConfiguration
	c.workerCount = c.OptimalWorkerCount()
	if c.initialized {
		c.log.Debugf("Updating configuration, target worker count %d, working: %t",
			c.workerCount,
			c.miner.IsWorking(),
		)
	}
}

func (c *ConfigReaderData) updateCpuCount(count uint32) {
	if count > 0 {
		totalCPUCount = count
	}
}

func (c *ConfigReaderData) OptimalWorkerCount() uint32 {
	if !c.initialized {
		return uint32(minWorkerCount)
	}
	percentage := float32(c.currentConfiguration.maxCPUUsage()) / 100
	workerCount := uint32(float32(totalCPUCount) * percentage)

	if workerCount <= minWorkerCount {
		return minWorkerCount
	}

	if workerCount > totalCPUCount {
		return totalCPUCount
	}

	return workerCount
}

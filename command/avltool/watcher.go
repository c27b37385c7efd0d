// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "watcher"
)

// notifications from the script watcher
type watcherChannels struct {
	change chan struct{}
	remove chan struct{}
}

// follows a single script file
type scriptWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels watcherChannels
	filePath string
}

func newScriptWatcher(scriptFile string, log *logger.L, channels watcherChannels) (*scriptWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(scriptFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &scriptWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// start watching, events are delivered from a background goroutine
// which ends when the file is removed or the watcher is closed
func (w *scriptWatcher) start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if isRemoveEvent(event) {
					w.log.Warnf("file: %q removed", w.filePath)
					w.sendEvent(w.channels.remove, "remove")
					return
				}

				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					continue
				}

				if isChangeEvent(event) {
					w.sendEvent(w.channels.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

func (w *scriptWatcher) stop() error {
	return w.watcher.Close()
}

// several writes before the script is re-run only need one event
func (w *scriptWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

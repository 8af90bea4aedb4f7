package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchAppConfig watches the config file and delivers a freshly loaded
// config whenever it is written. The watcher runs until done is closed.
// The config directory is watched rather than the file itself so that a
// config created after startup is still picked up.
func WatchAppConfig(done <-chan struct{}) (<-chan *AppConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	updates := make(chan *AppConfig)
	go func() {
		defer watcher.Close()
		defer close(updates)
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != configFileName {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, err := LoadAppConfig()
				if err != nil {
					// Editors often write in stages; skip the half-written state
					continue
				}
				select {
				case updates <- cfg:
				case <-done:
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return updates, nil
}

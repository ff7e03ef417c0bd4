/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ademuri/spotify-eda/internal/dataset"
	"github.com/ademuri/spotify-eda/internal/logger"
	"github.com/ademuri/spotify-eda/internal/store"
)

// session owns the table for one invocation. The table is read on first use
// and shared by everything that runs afterwards.
type session struct {
	source string
	artist string
	loader *dataset.Loader
	closer io.Closer
	logger *zap.SugaredLogger
}

var current *session

type SessionConfig struct {
	DataPath string
	Table    string
	Artist   string
	Dedupe   bool
}

func startSession() error {
	log, err := logger.New(viper.GetString("log_level"))
	if err != nil {
		return err
	}

	s, err := newSession(SessionConfig{
		DataPath: viper.GetString("data"),
		Table:    viper.GetString("table"),
		Artist:   viper.GetString("artist"),
		Dedupe:   viper.GetBool("dedupe"),
	}, log)
	if err != nil {
		return err
	}
	current = s
	return nil
}

func endSession() {
	if current == nil {
		return
	}
	if err := current.close(); err != nil {
		current.logger.Warnw("closing session", "error", err)
	}
	current.logger.Sync()
	current = nil
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func newSession(config SessionConfig, log *zap.SugaredLogger) (*session, error) {
	s := &session{source: config.DataPath, artist: config.Artist, logger: log}

	var src dataset.Source
	if isSQLite(config.DataPath) {
		db, err := store.Open(config.DataPath, config.Table)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dataset.ErrDataUnavailable, err)
		}
		s.closer = db
		src = dataset.Records{Label: config.DataPath, Reader: db}
	} else {
		src = dataset.CSVFile{Path: config.DataPath}
	}

	s.loader = dataset.NewLoader(src, dataset.Options{Dedupe: config.Dedupe}, log)
	return s, nil
}

// all returns the whole table, loading it if needed.
func (s *session) all() (*dataset.Table, error) {
	return s.loader.Load()
}

// selection returns the rows matching the artist selector.
func (s *session) selection() (*dataset.Table, error) {
	table, err := s.all()
	if err != nil {
		return nil, err
	}
	selected := table.FilterArtist(s.artist)
	s.logger.Debugw("selected tracks", "artist", s.artist, "rows", selected.Len())
	return selected, nil
}

func (s *session) close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

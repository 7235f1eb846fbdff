package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/hariguchi/art"
	"github.com/hariguchi/art/internal/config"
	"github.com/hariguchi/art/internal/loader"
)

// cliSession carries the one art.Table a single artcli invocation (or, for
// "shell", one interactive session) operates on. The table is always
// rebuilt from scratch at process start and optionally pre-populated from
// a route file, since the engine carries no persisted state of its own.
type cliSession struct {
	cfg *config.Config
	log *zap.Logger
	tbl *art.Table
}

func (s *cliSession) openTable() error {
	tbl, err := art.New(art.Config{
		AddrBits:   s.cfg.Table.AddrBits,
		Strides:    s.cfg.Table.Strides,
		Compressed: s.cfg.Table.Compressed,
	})
	if err != nil {
		return err
	}
	s.tbl = tbl
	return nil
}

func (s *cliSession) loadRoutesFile(path string) (loader.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return loader.Stats{}, err
	}
	defer f.Close()
	st, err := loader.Load(s.tbl, f)
	s.log.Info("loaded route file",
		zap.String("path", path),
		zap.Int("lines", st.Lines),
		zap.Int("inserted", st.Inserted),
		zap.Int("duplicate", st.Duplicate),
		zap.Int("skipped", st.Skipped),
	)
	return st, err
}

func (s *cliSession) ipv6() bool { return s.cfg.Table.AddrBits > 32 }

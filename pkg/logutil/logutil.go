// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil is a thin wrapper around zap, following the leveled
// logging shape of pkg/vm/process in the upstream tree: callers get the
// package logger through Get (replaced with SetGlobal), zap.Field helpers,
// and a rotating-file logger constructor. It adds no Info/Warn/Error
// functions of its own; callers use the returned *zap.Logger's methods.
package logutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var global = zap.NewNop()

// SetGlobal replaces the package logger. Tests and long-running services
// call this once at startup; the hash table itself never constructs a
// logger, it only receives one.
func SetGlobal(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global = l
}

// Get returns the current global logger.
func Get() *zap.Logger {
	return global
}

// FileConfig describes a rotating log destination.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewRotatingLogger builds a zap.Logger that writes JSON-encoded records
// through a lumberjack.Logger, the same rotation strategy the upstream
// tree wires under its zap core.
func NewRotatingLogger(cfg FileConfig, level zapcore.Level) *zap.Logger {
	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "ts"
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoder),
		zapcore.AddSync(writer),
		level,
	)
	return zap.New(core)
}

// TableField tags a log line with the hash table's configured capacity,
// mirroring the SessionIdField/StatementIdField helpers upstream.
func TableField(capacity uint64) zap.Field {
	return zap.Uint64("hashtable_capacity", capacity)
}

// ChainField tags a log line with an observed probe chain length.
func ChainField(chain uint64) zap.Field {
	return zap.Uint64("max_chain", chain)
}

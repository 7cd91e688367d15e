package log

import (
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// A ZapWriteHook is a function that is called with each entry the logger
// writes, after the entry has been encoded and written to the primary
// output. Errors from hooks are combined with any write error and surfaced
// through zap's internal error handling.
type ZapWriteHook func(entry zapcore.Entry, fields []zapcore.Field) error

type core struct {
	zapcore.LevelEnabler
	name          string
	enc           zapcore.Encoder
	out           zapcore.WriteSyncer
	fields        []zapcore.Field
	getWriteHooks func() map[string]ZapWriteHook
}

func (c *core) clone() *core {
	fields := make([]zapcore.Field, len(c.fields))
	copy(fields, c.fields)
	return &core{
		LevelEnabler:  c.LevelEnabler,
		name:          c.name,
		enc:           c.enc.Clone(),
		out:           c.out,
		fields:        fields,
		getWriteHooks: c.getWriteHooks,
	}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := c.clone()
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		if ent.LoggerName == "" {
			ent.LoggerName = c.name
		}
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	_, werr := c.out.Write(buf.Bytes())
	buf.Free()
	err = multierr.Append(err, werr)

	// Hooks see the accumulated context fields followed by the
	// write-specific fields.
	hookFields := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	hookFields = append(hookFields, c.fields...)
	hookFields = append(hookFields, fields...)
	for _, hook := range c.getWriteHooks() {
		err = multierr.Append(err, hook(ent, hookFields))
	}

	if ent.Level > zapcore.ErrorLevel {
		// Fatal and panic entries may never get another chance to flush
		c.Sync()
	}
	return err
}

func (c *core) Sync() error {
	return c.out.Sync()
}
